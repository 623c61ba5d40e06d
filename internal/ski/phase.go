package ski

// Phase is the run's state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseGameOver
}

// AnimationTimings are the terminal animation parameters in ticks.
type AnimationTimings struct {
	ShakeTicks     int
	FadeTicks      int
	StaggerTicks   int
	MilestoneTicks int
}

// Staging describes how far a terminal animation has progressed. It is
// derived from the ticks spent in the phase and never stored.
type Staging struct {
	Elapsed      int
	Fade         float64 // overlay opacity, 0 to 1
	ShakeX       int     // horizontal scene offset in cells
	LinesVisible int     // overlay text lines revealed so far
}

var shakePattern = [...]int{-1, 1, -1, 0, 1, -1, 1, 0}

// StagingFor computes the animation stage elapsed ticks after entering phase.
func StagingFor(phase Phase, elapsed int, t AnimationTimings) Staging {
	st := Staging{Elapsed: elapsed}
	if !phase.Terminal() || elapsed < 0 {
		return st
	}

	st.Fade = 1
	if t.FadeTicks > 0 {
		st.Fade = min(1, float64(elapsed)/float64(t.FadeTicks))
	}

	stagger := max(1, t.StaggerTicks)
	switch phase {
	case PhaseGameOver:
		if elapsed < t.ShakeTicks {
			st.ShakeX = shakePattern[elapsed%len(shakePattern)]
		}
		// Text reveals once the shake settles.
		if elapsed >= t.ShakeTicks {
			st.LinesVisible = 1 + (elapsed-t.ShakeTicks)/stagger
		}
	case PhaseWon:
		if elapsed >= t.FadeTicks {
			st.LinesVisible = 1 + (elapsed-t.FadeTicks)/stagger
		}
	}
	return st
}
