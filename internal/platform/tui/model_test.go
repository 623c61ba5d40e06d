package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/scores"
)

// stubGame is a scripted registry.Game: each Step returns the next state.
type stubGame struct {
	id      string // registry ID; "stub" when empty
	states  []core.GameState
	events  [][]core.Event
	steps   int
	inputs  []core.InputFrame
	resized [2]int
	best    float64
}

func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) SetBest(m float64)        { g.best = m }

func (g *stubGame) ID() string {
	if g.id == "" {
		return "stub"
	}
	return g.id
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	var res core.StepResult
	if g.steps < len(g.states) {
		res.State = g.states[g.steps]
	}
	if g.steps < len(g.events) {
		res.Events = g.events[g.steps]
	}
	g.steps++
	return res
}

func (g *stubGame) State() core.GameState {
	if g.steps == 0 || len(g.states) == 0 {
		return core.GameState{}
	}
	return g.states[min(g.steps, len(g.states))-1]
}

type recordingAudio struct {
	played []core.Event
	paused []bool
}

func (a *recordingAudio) Play(events ...core.Event) { a.played = append(a.played, events...) }
func (a *recordingAudio) SetPaused(p bool)          { a.paused = append(a.paused, p) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesFinishedRunOnce(t *testing.T) {
	board := scores.NewBoard()
	game := &stubGame{states: []core.GameState{
		{Score: 10},
		{Score: 42, GameOver: true},
		{Score: 42, GameOver: true},
		{Score: 0},
		{Score: 7, Won: true},
	}}
	m := NewModel(game, testConfig(), Options{Board: board, Player: "alice"})

	for range len(game.states) {
		m = tick(t, m)
	}

	top := board.TopScores("stub", 0)
	if len(top) != 2 {
		t.Fatalf("saved %d runs, expected 2: %+v", len(top), top)
	}
	if top[0].Score != 42 || top[0].Won || top[0].Player != "alice" {
		t.Errorf("first run = %+v", top[0])
	}
	if top[1].Score != 7 || !top[1].Won {
		t.Errorf("second run = %+v", top[1])
	}
}

func TestModelSeedsBestFromBoard(t *testing.T) {
	board := scores.NewBoard()
	board.SaveScore("stub", "", 120, false)
	game := &stubGame{}

	NewModel(game, testConfig(), Options{Board: board})

	if game.best != 120 {
		t.Errorf("best = %v, expected 120", game.best)
	}
}

func TestModelForwardsInputOncePerTick(t *testing.T) {
	game := &stubGame{states: []core.GameState{{}, {}}}
	m := NewModel(game, testConfig(), Options{})

	m, _ = send(t, m, runeKey('d'))
	m, _ = send(t, m, tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)
	tick(t, m)

	if len(game.inputs) != 2 {
		t.Fatalf("steps = %d, expected 2", len(game.inputs))
	}
	first := game.inputs[0]
	if !first.Has(core.ActionBoost) || !first.Has(core.ActionJump) {
		t.Errorf("first frame = %v, expected boost and jump", first.Actions)
	}
	if len(game.inputs[1].Actions) != 0 {
		t.Errorf("second frame = %v, expected empty", game.inputs[1].Actions)
	}
}

func TestModelEscPausesThenLeaves(t *testing.T) {
	game := &stubGame{states: []core.GameState{{}, {Paused: true}}}
	m := NewModel(game, testConfig(), Options{})
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = tick(t, m)
	m, cmd := send(t, m, esc)
	if cmd != nil || m.BackToMenu() {
		t.Fatal("esc during a live run should only pause")
	}
	m = tick(t, m)
	if !game.inputs[1].Has(core.ActionPause) {
		t.Fatal("esc should reach the game as ActionPause")
	}

	m, cmd = send(t, m, esc)
	if !m.BackToMenu() || cmd == nil {
		t.Error("esc while paused should leave the run")
	}
}

func TestModelEmbeddedBackKeepsProgram(t *testing.T) {
	game := &stubGame{states: []core.GameState{{GameOver: true}}}
	m := NewModel(game, testConfig(), Options{})
	m.embedded = true

	m = tick(t, m)
	m, cmd := send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b after a crash should go back")
	}
	if cmd != nil {
		t.Error("an embedded model must not quit the program")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &stubGame{states: []core.GameState{{Score: 3}}}
	m := NewModel(game, testConfig(), Options{})
	m = tick(t, m)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.resized != [2]int{120, 40} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.steps != 1 {
		t.Error("resize should not reset or step the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelPlaysCues(t *testing.T) {
	game := &stubGame{
		states: []core.GameState{{}, {Paused: true}, {}},
		events: [][]core.Event{{core.EventJump, core.EventBoost}},
	}
	rec := &recordingAudio{}
	m := NewModel(game, testConfig(), Options{Audio: rec})

	for range 3 {
		m = tick(t, m)
	}

	if len(rec.played) != 2 || rec.played[0] != core.EventJump || rec.played[1] != core.EventBoost {
		t.Errorf("played = %v", rec.played)
	}
	if len(rec.paused) != 2 || !rec.paused[0] || rec.paused[1] {
		t.Errorf("paused = %v, expected [true false]", rec.paused)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testConfig(), Options{})
	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}
