package whack

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/engine"
	"github.com/vovakirdan/tui-whack/internal/registry"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testClock is a manually advanced clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Add(d time.Duration) { c.now = c.now.Add(d) }

type fixedSelector struct {
	duration   int
	difficulty config.Difficulty
}

func (f fixedSelector) SelectedDuration() int { return f.duration }

func (f fixedSelector) SelectedDifficulty() config.Difficulty { return f.difficulty }

type memStore struct {
	high int
	sets int
}

func (m *memStore) HighScore() (int, error) { return m.high, nil }

func (m *memStore) SetHighScore(score int) error {
	m.high = score
	m.sets++
	return nil
}

func newTestGame(t *testing.T) (*Game, *testClock) {
	t.Helper()
	clock := &testClock{now: epoch}
	g := New(Options{
		Config: config.DefaultWhackConfig(),
		Clock:  clock.Now,
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	return g, clock
}

// stepUntil steps in 100ms increments until cond holds.
func stepUntil(t *testing.T, g *Game, clock *testClock, cond func(engine.Snapshot) bool) engine.Snapshot {
	t.Helper()
	for i := 0; i < 300; i++ {
		if snap := g.Session().Snapshot(); cond(snap) {
			return snap
		}
		clock.Add(100 * time.Millisecond)
		g.Step(core.NewInputFrame())
	}
	t.Fatal("condition not met within 30s")
	return engine.Snapshot{}
}

func hasMole(s engine.Snapshot) bool { return s.Mole >= 0 }

func TestResetStartsRound(t *testing.T) {
	g, _ := newTestGame(t)

	if !g.Session().Running() {
		t.Fatal("Reset should start a round")
	}
	state := g.State()
	if state.Score != 0 || state.GameOver {
		t.Errorf("State() = %+v", state)
	}
	if g.display.countdown != 60 {
		t.Errorf("countdown shown = %d, expected 60", g.display.countdown)
	}
	if g.cursor != 4 {
		t.Errorf("cursor = %d, expected the center cell", g.cursor)
	}
}

func TestStepSelectsByNumber(t *testing.T) {
	g, clock := newTestGame(t)
	snap := stepUntil(t, g, clock, hasMole)

	in := core.NewInputFrame()
	in.SelectCell(snap.Mole)
	res := g.Step(in)

	if res.State.Score != 10 {
		t.Errorf("score = %d after hitting the mole, expected 10", res.State.Score)
	}
}

func TestStepClickHitsCell(t *testing.T) {
	g, clock := newTestGame(t)
	snap := stepUntil(t, g, clock, hasMole)

	in := core.NewInputFrame()
	in.Click(core.Point{X: 0, Y: 0}) // Outside the grid
	cx, cy := g.layout.cellRect(snap.Mole).Center()
	in.Click(core.Point{X: cx, Y: cy})
	res := g.Step(in)

	if res.State.Score != 10 {
		t.Errorf("score = %d after clicking the mole, expected 10", res.State.Score)
	}
	if g.cursor != snap.Mole {
		t.Errorf("cursor = %d, expected it to follow the click to %d", g.cursor, snap.Mole)
	}
}

func TestCursorMovement(t *testing.T) {
	g, _ := newTestGame(t)

	tests := []struct {
		name     string
		actions  []core.Action
		expected int
	}{
		{"up left", []core.Action{core.ActionUp, core.ActionLeft}, 0},
		{"clamped at the top", []core.Action{core.ActionUp}, 0},
		{"down", []core.Action{core.ActionDown}, 3},
		{"right", []core.Action{core.ActionRight}, 4},
		{"down right", []core.Action{core.ActionDown, core.ActionRight}, 8},
		{"clamped at the corner", []core.Action{core.ActionDown, core.ActionRight}, 8},
	}
	g.cursor = 4
	for _, tc := range tests {
		in := core.NewInputFrame()
		for _, a := range tc.actions {
			in.Set(a)
		}
		g.moveCursor(in)
		if g.cursor != tc.expected {
			t.Errorf("%s: cursor = %d, expected %d", tc.name, g.cursor, tc.expected)
		}
	}
}

func TestConfirmWhacksCursorCell(t *testing.T) {
	g, clock := newTestGame(t)
	snap := stepUntil(t, g, clock, hasMole)
	g.cursor = snap.Mole

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	if res := g.Step(in); res.State.Score != 10 {
		t.Errorf("score = %d after Confirm on the mole, expected 10", res.State.Score)
	}
}

func TestDifficultyCycle(t *testing.T) {
	g, _ := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionDifficulty)
	g.Step(in)

	if g.SelectedDifficulty() != config.DifficultyMedium {
		t.Errorf("SelectedDifficulty() = %v, expected medium", g.SelectedDifficulty())
	}
	if got := g.Session().Snapshot().Difficulty; got != config.DifficultyMedium {
		t.Errorf("session difficulty = %v, expected medium", got)
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g, clock := newTestGame(t)
	first := g.Session()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.Session() != first {
		t.Fatal("R restarted a running round")
	}

	clock.Add(61 * time.Second)
	if res := g.Step(core.NewInputFrame()); !res.State.GameOver {
		t.Fatal("round should be over after 61s")
	}

	g.Step(restart)
	if g.Session() == first || !g.Session().Running() {
		t.Error("R after game over should start a new round")
	}
}

func TestResetEndsRunningRoundOnce(t *testing.T) {
	clock := &testClock{now: epoch}
	store := &memStore{}
	g := New(Options{Persistence: store, Clock: clock.Now})
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3}
	g.Reset(rc)

	snap := stepUntil(t, g, clock, hasMole)
	in := core.NewInputFrame()
	in.SelectCell(snap.Mole)
	g.Step(in)

	g.Reset(rc)
	if store.sets != 1 || store.high != 10 {
		t.Errorf("high score writes = %d, high = %d; expected one write of 10", store.sets, store.high)
	}
	if got := g.State().HighScore; got != 10 {
		t.Errorf("new round HighScore = %d, expected 10", got)
	}
}

func TestRenderHUDAndBoard(t *testing.T) {
	g, clock := newTestGame(t)
	stepUntil(t, g, clock, hasMole)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{Title, "Score 0", "Time 59", "Difficulty Easy"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, glyphMole.text) && !strings.Contains(out, glyphZombie.text) {
		t.Errorf("screen shows no mole:\n%s", out)
	}
	if !strings.Contains(out, "┌5") {
		t.Errorf("cell numbers missing:\n%s", out)
	}
}

func TestRenderGameOver(t *testing.T) {
	g, clock := newTestGame(t)
	clock.Add(61 * time.Second)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER: 0", "High score: 0", "Time Keeper", "R: play again"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	g.Resize(20, 8)

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected the too-small message:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.layout.tooSmall {
		t.Error("layout should recover after growing")
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := newLayout(3, 3, 80, 24)
	if l.tooSmall {
		t.Fatal("80x24 should fit a 3x3 board")
	}

	for id := 0; id < 9; id++ {
		r := l.cellRect(id)
		corners := []core.Point{
			{X: r.X, Y: r.Y},
			{X: r.Right() - 1, Y: r.Bottom() - 1},
		}
		for _, p := range corners {
			if got := l.cellAt(p); got != id {
				t.Errorf("cellAt(%+v) = %d, expected %d", p, got, id)
			}
		}
	}

	grid := l.gridRect()
	outside := []core.Point{
		{X: grid.X - 1, Y: grid.Y},
		{X: grid.Right(), Y: grid.Y},
		{X: grid.X, Y: grid.Bottom()},
	}
	for _, p := range outside {
		if got := l.cellAt(p); got != -1 {
			t.Errorf("cellAt(%+v) = %d, expected -1", p, got)
		}
	}
}

func TestAchievementToastExpires(t *testing.T) {
	clock := &testClock{now: epoch}
	d := newDisplay(9, nil, clock.Now)
	d.AnnounceAchievement(engine.NoviceWhacker)

	if got := d.activeToasts(); len(got) != 1 || !strings.Contains(got[0].text, "Novice Whacker") {
		t.Errorf("activeToasts() = %v", got)
	}
	clock.Add(toastLifetime)
	if got := d.activeToasts(); len(got) != 0 {
		t.Errorf("toast still shown after its lifetime: %v", got)
	}
}

func TestRegistryCreatesGame(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q is not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != Title {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestSetSelectionUpdatesDefaults(t *testing.T) {
	saved := Defaults()
	t.Cleanup(func() { defaults = saved })

	SetSelection(fixedSelector{duration: 30, difficulty: config.DifficultyHard})
	g := New(Defaults())

	if g.SelectedDuration() != 30 || g.SelectedDifficulty() != config.DifficultyHard {
		t.Errorf("selection = %d/%v, expected 30/hard", g.SelectedDuration(), g.SelectedDifficulty())
	}
}
