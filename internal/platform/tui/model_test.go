package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-whack/internal/core"
)

// recordingGame remembers what the model fed it.
type recordingGame struct {
	resets int
	stops  int
	w, h   int
	frames []core.InputFrame
	state  core.GameState
	glyph  rune
}

func (g *recordingGame) ID() string    { return "rec" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(rc core.RuntimeConfig) {
	g.resets++
	g.w, g.h = rc.ScreenW, rc.ScreenH
}

func (g *recordingGame) Resize(w, h int) { g.w, g.h = w, h }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.Set(0, 0, g.glyph)
}

func (g *recordingGame) State() core.GameState { return g.state }

func (g *recordingGame) Stop() { g.stops++ }

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func newTestModel() (Model, *recordingGame) {
	g := &recordingGame{glyph: '@'}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1})
	m.Init()
	return m, g
}

func TestModelFeedsInputOnTick(t *testing.T) {
	m, g := newTestModel()
	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}

	m, _ = update(t, m, runes("3"))
	m, _ = update(t, m, tea.MouseMsg{X: 7, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.frames))
	}
	in := g.frames[0]
	if len(in.Cells) != 1 || in.Cells[0] != 2 {
		t.Errorf("Cells = %v, expected [2]", in.Cells)
	}
	if len(in.Clicks) != 1 || in.Clicks[0] != (core.Point{X: 7, Y: 4}) {
		t.Errorf("Clicks = %v", in.Clicks)
	}

	update(t, m, TickMsg{})
	if !g.frames[1].Empty() {
		t.Error("input should be cleared after each frame")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, g := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Error("resize should not restart the round")
	}
	if g.w != 100 || g.h != 40 {
		t.Errorf("game size = %dx%d, expected 100x40", g.w, g.h)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen size = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackStopsRound(t *testing.T) {
	m, g := newTestModel()
	m, cmd := update(t, m, runes("b"))

	if !m.BackToMenu() || g.stops != 1 {
		t.Errorf("BackToMenu = %v, stops = %d", m.BackToMenu(), g.stops)
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program on back")
	}

	update(t, m, TickMsg{})
	if len(g.frames) != 0 {
		t.Error("no frames should run after going back")
	}
	if m.View() != "" {
		t.Error("view should be empty after going back")
	}
}

func TestModelStandaloneBackQuits(t *testing.T) {
	m, _ := newTestModel()
	m.standalone = true
	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("standalone model should quit the program on back")
	}
}

func TestModelQuit(t *testing.T) {
	m, g := newTestModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if g.stops != 1 {
		t.Errorf("stops = %d, expected the round to be ended", g.stops)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel()
	if view := m.View(); view == "" || []rune(view)[0] != '@' {
		t.Errorf("View() should start with the rendered glyph, got %q", view)
	}
}
