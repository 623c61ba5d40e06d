package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
	"github.com/vovakirdan/tui-ski/internal/scores"
)

// CuePlayer plays sound cues for gameplay events.
type CuePlayer interface {
	Play(events ...core.Event)
}

// cuePauser is implemented by cue players that can hold their output.
type cuePauser interface {
	SetPaused(paused bool)
}

// bestKeeper is implemented by games that display a best distance.
type bestKeeper interface {
	SetBest(meters float64)
}

// logSink is implemented by games that accept a logger.
type logSink interface {
	SetLogger(l *log.Logger)
}

// Options are the per-run collaborators of a Model.
// Every field is optional.
type Options struct {
	Board  *scores.Board
	Audio  CuePlayer
	Logger *log.Logger
	Player string // name recorded with saved runs
}

// Model is the Bubble Tea model for running one ski game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	board      *scores.Board
	audio      CuePlayer
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	embedded   bool // Owned by a SessionModel: going back must not quit the program
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if s, ok := game.(logSink); ok {
		s.SetLogger(logger)
	}
	if k, ok := game.(bestKeeper); ok && opts.Board != nil {
		k.SetBest(float64(opts.Board.HighScore(game.ID())))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      opts.Board,
		audio:      opts.Audio,
		logger:     logger,
		player:     opts.Player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg, m.config.ScreenW); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
		return m, nil
	case core.ActionBack:
		// Esc pauses a live run; a paused or finished run is left
		if m.gameState.Paused || m.gameState.Finished() {
			m.backToMenu = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		action = core.ActionPause
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the running game to the new window size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.audio != nil {
		if p, ok := m.audio.(cuePauser); ok && wasPaused != m.gameState.Paused {
			p.SetPaused(m.gameState.Paused)
		}
		if len(result.Events) > 0 {
			m.audio.Play(result.Events...)
		}
	}

	switch {
	case m.gameState.Finished() && !m.scoreSaved:
		m.saveRun()
	case !m.gameState.Finished():
		// A restart brings the run back to Playing
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run on the board (once per run).
func (m *Model) saveRun() {
	m.scoreSaved = true
	if m.board == nil || m.gameState.Score <= 0 {
		return
	}
	id := m.board.SaveScore(m.game.ID(), m.player, m.gameState.Score, m.gameState.Won)
	m.logger.Info("run recorded", "id", id, "game", m.game.ID(),
		"player", m.player, "distance", m.gameState.Score, "won", m.gameState.Won)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// It reports whether the player asked to go back rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks map to the jump and boost zones
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
