package ski

// Texts holds every player-facing string of the game screen.
type Texts struct {
	Title     string
	JumpHint  string
	BoostHint string

	GameOverTitle   string
	GameOverMessage string
	DistanceOf      string // meters skied, total meters
	DistanceSkied   string // meters skied
	RestartHint     string

	WinLines []string

	Boosting      string
	BoostReady    string
	BoostCooldown string

	ProgressLabel  string
	ProgressFormat string // meters, total, remaining
	DistanceLabel  string
	BestFormat     string

	MilestoneFormat string
	MilestoneText   string

	PausedTitle string
	PausedHint  string
}

// DefaultTexts is the English text set.
var DefaultTexts = Texts{
	Title:     "Christmas Ski Run",
	JumpHint:  "W / Up / Space: jump",
	BoostHint: "Double tap D / Right: boost",

	GameOverTitle:   "* GAME OVER *",
	GameOverMessage: "You hit an obstacle!",
	DistanceOf:      "Distance skied: %dm of %dm",
	DistanceSkied:   "Distance skied: %dm",
	RestartHint:     "Press R or Space to restart",

	WinLines: []string{
		"* MERRY CHRISTMAS! *",
		"Gift voucher",
		"ALL-INCLUSIVE SKI TRIP",
		"to",
		"HOCHFICHT, Austria",
		"January 6th",
		"INCLUDING A HUT STOP",
		"Currywurst & fries",
	},

	Boosting:      ">> BOOSTING! >>",
	BoostReady:    "BOOST READY!",
	BoostCooldown: "Digesting...",

	ProgressLabel:  "Distance till present",
	ProgressFormat: "%dm / %dm  (%dm remaining)",
	DistanceLabel:  "Distance",
	BestFormat:     "Best: %dm",

	MilestoneFormat: "%dm!",
	MilestoneText:   "Milestone Reached!",

	PausedTitle: "PAUSED",
	PausedHint:  "Press P to resume",
}
