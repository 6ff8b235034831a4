// Package whack adapts the Whack-a-Mole engine to the terminal platform: it
// turns input frames into cell selections, advances the session clock once
// per frame and draws the board into a core.Screen.
package whack

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/engine"
	"github.com/vovakirdan/tui-whack/internal/registry"
)

const (
	ID    = "whack"
	Title = "Whack-a-Mole"
)

// Options configures a Game. Zero values select defaults.
type Options struct {
	Config      config.WhackConfig
	Duration    int // Round length in seconds; 0 uses the config default
	Difficulty  config.Difficulty
	Persistence engine.Persistence
	Recorder    engine.Recorder
	Player      audio.Player
	Logger      *log.Logger
	Clock       func() time.Time
}

// Package-level defaults used by the registry factory, set from CLI flags
// and the setup menu.
var defaults = Options{
	Config:     config.DefaultWhackConfig(),
	Difficulty: config.DifficultyEasy,
}

// SetConfig sets the configuration for new games.
func SetConfig(cfg config.WhackConfig) {
	defaults.Config = cfg
}

// SetSelection sets the round length and difficulty for new games.
func SetSelection(sel engine.Selector) {
	defaults.Duration = sel.SelectedDuration()
	defaults.Difficulty = sel.SelectedDifficulty()
}

// SetPersistence sets where new games load and save the high score and
// record finished sessions. Either may be nil.
func SetPersistence(p engine.Persistence, r engine.Recorder) {
	defaults.Persistence = p
	defaults.Recorder = r
}

// SetPlayer sets the sound player for new games.
func SetPlayer(p audio.Player) {
	defaults.Player = p
}

// SetLogger sets the logger for new games.
func SetLogger(l *log.Logger) {
	defaults.Logger = l
}

// Defaults returns the options the registry factory uses.
func Defaults() Options {
	return defaults
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: Title}, func() registry.Game {
		return New(defaults)
	})
}

// Game is one player's Whack-a-Mole table.
type Game struct {
	opts    Options
	rc      core.RuntimeConfig
	round   int64
	session *engine.Session
	display *display
	layout  layout
	cursor  int

	duration   int
	difficulty config.Difficulty
}

var (
	_ registry.Game   = (*Game)(nil)
	_ engine.Selector = (*Game)(nil)
)

// New creates a game. Call Reset to start the first round.
func New(opts Options) *Game {
	if opts.Config.Cells() == 0 {
		opts.Config = config.DefaultWhackConfig()
	}
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Duration <= 0 {
		opts.Duration = opts.Config.Session.Duration
	}
	if !opts.Difficulty.Valid() {
		opts.Difficulty = config.DifficultyEasy
	}

	return &Game{
		opts:       opts,
		duration:   opts.Duration,
		difficulty: opts.Difficulty,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return Title }

// SelectedDuration implements engine.Selector.
func (g *Game) SelectedDuration() int { return g.duration }

// SelectedDifficulty implements engine.Selector.
func (g *Game) SelectedDifficulty() config.Difficulty { return g.difficulty }

// Session returns the engine session of the current round.
func (g *Game) Session() *engine.Session { return g.session }

// Reset starts a new round. A running round is ended as a quit first so
// it is still recorded.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.session != nil {
		g.session.EndGame()
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.rc = rc

	cfg := g.opts.Config
	g.layout = newLayout(cfg.Board.Rows, cfg.Board.Cols, rc.ScreenW, rc.ScreenH)
	g.display = newDisplay(cfg.Cells(), g.opts.Player, g.opts.Clock)
	g.session = engine.New(engine.Options{
		Config:       cfg,
		Presentation: g.display,
		Persistence:  g.opts.Persistence,
		Recorder:     g.opts.Recorder,
		Logger:       g.opts.Logger,
		Seed:         rc.Seed + g.round,
		Clock:        g.opts.Clock,
	})
	g.round++
	g.cursor = cfg.Cells() / 2

	g.session.StartWith(g)
}

// Stop ends the running round as a quit. The board stays on screen.
func (g *Game) Stop() {
	if g.session != nil {
		g.session.EndGame()
	}
}

// Resize relays the board out for a new screen size. The round continues.
func (g *Game) Resize(w, h int) {
	g.rc.ScreenW, g.rc.ScreenH = w, h
	cfg := g.opts.Config
	g.layout = newLayout(cfg.Board.Rows, cfg.Board.Cols, w, h)
}

// Step applies the frame's input, then advances the session to now.
// Selections are judged against the board the player saw.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.rc)
	}

	if in.Has(core.ActionRestart) && !g.session.Running() {
		g.Reset(g.rc)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDifficulty) {
		g.difficulty = g.difficulty.Next()
		g.session.SetDifficulty(g.difficulty)
	}

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.session.Select(g.cursor)
	}
	for _, id := range in.Cells {
		g.session.Select(id)
	}
	for _, p := range in.Clicks {
		if id := g.layout.cellAt(p); id >= 0 {
			g.cursor = id
			g.session.Select(id)
		}
	}

	g.session.Tick()
	return core.StepResult{State: g.State()}
}

// moveCursor moves the keyboard cursor, stopping at the board edges.
func (g *Game) moveCursor(in core.InputFrame) {
	rows, cols := g.layout.rows, g.layout.cols
	row, col := g.cursor/cols, g.cursor%cols

	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = core.Clamp(row, 0, rows-1)*cols + core.Clamp(col, 0, cols-1)
}

// State returns the current score state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	snap := g.session.Snapshot()
	return core.GameState{
		Score:     snap.Score,
		HighScore: snap.HighScore,
		GameOver:  snap.GameOver,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "1-9/Click: Whack | Arrows+Enter: Whack | Tab: Difficulty | R: Restart | B: Menu | Q: Quit"
}
