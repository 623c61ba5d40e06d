package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/registry"
	"github.com/vovakirdan/tui-ski/internal/scores"
)

const sessionStubID = "session_stub"

func init() {
	registry.Register(sessionStubID, func() registry.Game {
		return &stubGame{id: sessionStubID, states: []core.GameState{{Score: 30, GameOver: true}}}
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func selectStub(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == sessionStubID {
			m.menu.cursor = i
		}
	}
	return updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSessionMenuGameMenu(t *testing.T) {
	board := scores.NewBoard()
	m := NewSessionModel(board, testConfig(), "bob", log.New(io.Discard))

	m = selectStub(t, m)
	if m.screen != screenGame || m.game == nil {
		t.Fatal("selecting a mode should start a game")
	}

	m = updateSession(t, m, TickMsg{})
	if n := board.Count(sessionStubID); n != 1 {
		t.Fatalf("board has %d runs, expected 1", n)
	}
	if top := board.TopScores(sessionStubID, 1); top[0].Player != "bob" {
		t.Errorf("player = %q, expected bob", top[0].Player)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("esc after a crash should return to the menu")
	}
	if m.quitting {
		t.Error("session should still be running")
	}

	// Stale ticks from the finished game are ignored by the menu
	m = updateSession(t, m, TickMsg{})
	if m.screen != screenMenu {
		t.Error("tick should not leave the menu")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(scores.NewBoard(), testConfig(), "bob", log.New(io.Discard))

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatal("tab should open the scoreboard")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestSessionResizeTracksConfig(t *testing.T) {
	m := NewSessionModel(scores.NewBoard(), testConfig(), "bob", log.New(io.Discard))
	m = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("config = %dx%d", m.config.ScreenW, m.config.ScreenH)
	}
	m = selectStub(t, m)
	if m.game.config.ScreenW != 100 {
		t.Errorf("game started at width %d, expected 100", m.game.config.ScreenW)
	}
}
