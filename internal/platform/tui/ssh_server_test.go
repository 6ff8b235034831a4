package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func newTestSessionModel() SessionModel {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	opts := whack.Options{Clock: func() time.Time { return epoch }}
	return NewSessionModel(nil, opts, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, nil)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSessionModel()

	// Pick hard, then start.
	m = sessionUpdate(t, m, keyDown, keyDown, keyLeft, keyUp, keyUp, keyEnter)
	if m.gameModel == nil {
		t.Fatal("Start should open a game")
	}
	if m.selection.Difficulty != config.DifficultyHard {
		t.Errorf("selection = %+v, expected hard", m.selection)
	}
	game, ok := m.gameModel.game.(*whack.Game)
	if !ok {
		t.Fatalf("game is %T", m.gameModel.game)
	}
	if game.SelectedDifficulty() != config.DifficultyHard {
		t.Errorf("game difficulty = %v, expected hard", game.SelectedDifficulty())
	}

	m = sessionUpdate(t, m, TickMsg{}, runes("b"))
	if m.gameModel != nil {
		t.Fatal("b should return to the menu")
	}
	if game.Session().Running() {
		t.Error("leaving should end the round")
	}
	if got := m.menu.Selection().Difficulty; got != config.DifficultyHard {
		t.Errorf("menu forgot the selection: %v", got)
	}
	if m.quitting {
		t.Error("session should still be running")
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	m := newTestSessionModel()

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard should render without a store")
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil || m.quitting {
		t.Error("Esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSessionModel()
	next, cmd := m.Update(runes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
