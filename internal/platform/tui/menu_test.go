package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ski/internal/scores"
)

func TestMenuLastRun(t *testing.T) {
	board := scores.NewBoard()
	m := NewMenuModel(board, testConfig())
	if got := m.lastRun(); got != "" {
		t.Errorf("empty board lastRun = %q", got)
	}

	board.SaveScore(sessionStubID, "", 40, false)
	board.SaveScore(sessionStubID, "bob", 900, true)

	want := "Last run: 900m in Stub, reached the present by bob"
	if got := m.lastRun(); got != want {
		t.Errorf("lastRun = %q, expected %q", got, want)
	}
	if !strings.Contains(m.View(), want) {
		t.Error("menu should show the last run")
	}

	board.SaveScore("unknown_mode", "", 12, false)
	if got := m.lastRun(); got != "Last run: 12m in unknown_mode, crashed" {
		t.Errorf("lastRun for an unlisted mode = %q", got)
	}
}

func TestMenuWithoutBoard(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	if m.lastRun() != "" || m.best(sessionStubID) != 0 {
		t.Error("a menu without a board should show no records")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() || cmd == nil {
		t.Error("tab should leave a standalone menu for the scoreboard")
	}
}
