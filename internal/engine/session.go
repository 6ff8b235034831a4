package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-whack/internal/board"
	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/sched"
)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Config       config.WhackConfig
	Presentation Presentation
	Persistence  Persistence
	Recorder     Recorder
	Logger       *log.Logger
	Seed         int64
	// Clock returns the host's current time. Start aligns the scheduler
	// with it and Tick advances to it. Defaults to time.Now.
	Clock func() time.Time
}

// gameState is the per-session score state.
type gameState struct {
	score     int
	hits      int // consecutive regular hits
	countdown int
	gameOver  bool
	unlocked  map[Achievement]bool
	order     []Achievement

	totalHits int
	bonuses   int
	misses    int
}

// spawnState holds the current spawn references, -1 when absent.
type spawnState struct {
	mole    int
	plant   int
	special int
	expiry  *sched.Timer
}

// Session runs one game at a time. All exported methods are safe for
// concurrent use; timer bodies run under the same lock from Advance.
type Session struct {
	mu sync.Mutex

	cfg      config.WhackConfig
	view     Presentation
	store    Persistence
	recorder Recorder
	logger   *log.Logger
	clock    func() time.Time

	sched  *sched.Scheduler
	board  *board.Board
	placer spawnSource

	difficulty config.Difficulty
	periods    config.Periods
	duration   int
	tasks      []*sched.Timer

	state     gameState
	spawn     spawnState
	started   bool
	ended     bool
	reason    EndReason
	highScore int
	newHigh   bool
	startedAt time.Time
}

// New creates an idle session. Call Start to begin a game.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg.Cells() == 0 {
		cfg = config.DefaultWhackConfig()
	}
	cfg.Validate()

	s := &Session{
		cfg:      cfg,
		view:     opts.Presentation,
		store:    opts.Persistence,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		clock:    opts.Clock,
	}
	if s.view == nil {
		s.view = NopPresentation{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	s.sched = sched.New(s.clock())
	s.board = board.New(cfg.Board.Rows, cfg.Board.Cols)
	s.placer = board.NewPlacer(opts.Seed, s.board.Len())
	s.difficulty = config.DifficultyEasy
	s.periods = cfg.Difficulty.Easy.Periods()
	s.duration = cfg.Session.Duration
	s.spawn = spawnState{mole: -1, plant: -1, special: -1}
	s.state.countdown = s.duration
	s.state.unlocked = make(map[Achievement]bool)
	return s
}

// Config returns the validated configuration in use.
func (s *Session) Config() config.WhackConfig {
	return s.cfg
}

// Start begins a game of duration seconds at difficulty d. A non-positive
// duration selects the configured default. An unrecognized difficulty keeps
// the previous spawn periods. Start is ignored while a game is running.
func (s *Session) Start(duration int, d config.Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active() {
		s.logger.Debug("start ignored, session already running")
		return
	}
	if duration <= 0 {
		duration = s.cfg.Session.Duration
	}

	s.sched.StopAll()
	s.sched.Advance(s.clock())
	s.startedAt = s.sched.Now()

	s.board = board.New(s.cfg.Board.Rows, s.cfg.Board.Cols)
	s.spawn = spawnState{mole: -1, plant: -1, special: -1}
	s.state = gameState{
		countdown: duration,
		unlocked:  make(map[Achievement]bool),
	}
	s.duration = duration
	s.started = true
	s.ended = false
	s.reason = EndNone
	s.newHigh = false
	s.highScore = s.loadHighScore()

	s.bindTasks(d)

	for _, c := range s.board.Cells() {
		s.view.RenderCell(c)
	}
	s.view.UpdateScore(0)
	s.view.UpdateTimer(duration)

	s.logger.Info("session started",
		"duration", duration,
		"difficulty", s.difficulty.String(),
		"high_score", s.highScore)
}

// StartWith starts a game using the selector's choices.
func (s *Session) StartWith(sel Selector) {
	s.Start(sel.SelectedDuration(), sel.SelectedDifficulty())
}

// SetDifficulty replaces the four periodic tasks with ones at d's periods.
// The countdown and the spawn references are kept. It has no effect when
// no game is running.
func (s *Session) SetDifficulty(d config.Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active() {
		return
	}
	s.bindTasks(d)
	s.logger.Info("difficulty changed", "difficulty", s.difficulty.String())
}

// EndGame finishes the running game. Calling it again has no effect.
func (s *Session) EndGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active() {
		s.state.gameOver = true
		s.endGame(EndQuit)
	}
}

// Advance runs every task due up to now and returns how many ran.
func (s *Session) Advance(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sched.Advance(now)
}

// Tick advances to the session clock's current time.
func (s *Session) Tick() int {
	return s.Advance(s.clock())
}

// Now returns the scheduler time of the last Advance.
func (s *Session) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sched.Now()
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.score
}

// Countdown returns the remaining seconds.
func (s *Session) Countdown() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.countdown
}

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.gameOver
}

// Running reports whether a game is in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active()
}

// Unlocked returns the achievements unlocked this game, in unlock order.
func (s *Session) Unlocked() []Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Achievement(nil), s.state.order...)
}

// Cells returns a copy of the board.
func (s *Session) Cells() []board.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.Cells()
}

// Rows returns the number of board rows.
func (s *Session) Rows() int { return s.cfg.Board.Rows }

// Cols returns the number of board columns.
func (s *Session) Cols() int { return s.cfg.Board.Cols }

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Started:         s.started,
		GameOver:        s.state.gameOver,
		Score:           s.state.score,
		HighScore:       max(s.highScore, s.state.score),
		ConsecutiveHits: s.state.hits,
		Countdown:       s.state.countdown,
		Duration:        s.duration,
		Difficulty:      s.difficulty,
		EndReason:       s.reason,
		Achievements:    append([]Achievement(nil), s.state.order...),
		Mole:            s.spawn.mole,
		Plant:           s.spawn.plant,
		Special:         s.spawn.special,
	}
	if s.spawn.expiry != nil {
		snap.SpecialDeadline = s.spawn.expiry.When()
	}
	return snap
}

func (s *Session) active() bool {
	return s.started && !s.ended
}

// bindTasks stops the periodic tasks and starts new ones at d's periods.
func (s *Session) bindTasks(d config.Difficulty) {
	for _, t := range s.tasks {
		t.Stop()
	}

	if level, ok := s.cfg.Difficulty.Level(d); ok {
		s.difficulty = d
		s.periods = level.Periods()
	} else {
		s.logger.Warn("unknown difficulty, keeping previous periods",
			"difficulty", d.String(),
			"kept", s.difficulty.String())
	}

	s.tasks = []*sched.Timer{
		s.sched.Every(s.periods.Mole, s.spawnMole),
		s.sched.Every(s.periods.Plant, s.spawnPlant),
		s.sched.Every(s.periods.Special, s.spawnSpecial),
		s.sched.Every(s.cfg.ClockInterval(), s.tick),
	}
}

// endGame persists the high score, stops every task and reports the result.
// Only the first call per game has any effect.
func (s *Session) endGame(reason EndReason) {
	if !s.active() {
		return
	}
	s.ended = true
	s.reason = reason

	for _, t := range s.tasks {
		t.Stop()
	}
	s.tasks = nil
	s.spawn.expiry.Stop()
	s.spawn.expiry = nil

	// Another session sharing the store may have raised the high score
	// since Start.
	if stored := s.loadHighScore(); stored > s.highScore {
		s.highScore = stored
	}
	if s.state.score > s.highScore {
		s.newHigh = true
		s.highScore = s.state.score
		if s.store != nil {
			if err := s.store.SetHighScore(s.state.score); err != nil {
				s.logger.Error("failed to save high score", "err", err)
			}
		}
	}

	s.view.ShowGameOver(s.state.score, s.highScore)

	if s.recorder != nil {
		if err := s.recorder.RecordSession(s.summary()); err != nil {
			s.logger.Error("failed to record session", "err", err)
		}
	}

	s.logger.Info("session ended",
		"reason", string(reason),
		"score", s.state.score,
		"high_score", s.highScore,
		"achievements", len(s.state.order))
}

func (s *Session) loadHighScore() int {
	if s.store == nil {
		return 0
	}
	score, err := s.store.HighScore()
	if err != nil {
		s.logger.Error("failed to load high score", "err", err)
		return 0
	}
	return score
}

func (s *Session) summary() Summary {
	return Summary{
		Difficulty:   s.difficulty,
		Duration:     s.duration,
		Score:        s.state.score,
		HighScore:    s.highScore,
		NewHighScore: s.newHigh,
		Hits:         s.state.totalHits,
		Bonuses:      s.state.bonuses,
		Misses:       s.state.misses,
		EndReason:    s.reason,
		Achievements: append([]Achievement(nil), s.state.order...),
		StartedAt:    s.startedAt,
		EndedAt:      s.sched.Now(),
	}
}
