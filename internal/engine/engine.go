// Package engine implements the Whack-a-Mole spawn, timing and selection
// rules. A Session owns the board, the spawn references and the score state;
// four periodic tasks (mole, plant and special spawns plus the countdown)
// run on one cooperative scheduler that the host advances.
//
// The engine has no knowledge of terminals, audio devices or databases. It
// reports through the Presentation, Persistence and Recorder interfaces.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-whack/internal/board"
	"github.com/vovakirdan/tui-whack/internal/config"
)

// Cue is an audio cue requested from the presentation layer.
type Cue int

const (
	CueHit Cue = iota
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "Hit"
	case CueGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Outcome classifies a selection.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // No session, game over, or no such cell
	OutcomeHit                    // Current mole
	OutcomeHazard                 // Current plant: game over
	OutcomeBonus                  // Special mole
	OutcomeMiss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeHit:
		return "Hit"
	case OutcomeHazard:
		return "Hazard"
	case OutcomeBonus:
		return "Bonus"
	case OutcomeMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// EndReason records why a session finished.
type EndReason string

const (
	EndNone    EndReason = ""
	EndTimeout EndReason = "timeout"
	EndHazard  EndReason = "hazard"
	EndQuit    EndReason = "quit"
)

// Presentation receives every visible change. Methods are called while the
// session lock is held and must not call back into the Session.
type Presentation interface {
	RenderCell(c board.Cell)
	UpdateScore(score int)
	UpdateTimer(countdown int)
	ShowGameOver(score, highScore int)
	PlayCue(c Cue)
	AnnounceAchievement(a Achievement)
}

// Persistence stores the single high-score value.
type Persistence interface {
	// HighScore returns the stored high score, or 0 when none exists.
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Selector supplies the player's chosen duration and difficulty.
type Selector interface {
	SelectedDuration() int
	SelectedDifficulty() config.Difficulty
}

// Recorder receives a summary of every finished session.
type Recorder interface {
	RecordSession(sum Summary) error
}

// Summary describes a finished session.
type Summary struct {
	Difficulty   config.Difficulty
	Duration     int
	Score        int
	HighScore    int
	NewHighScore bool
	Hits         int
	Bonuses      int
	Misses       int
	EndReason    EndReason
	Achievements []Achievement
	StartedAt    time.Time
	EndedAt      time.Time
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Started         bool
	GameOver        bool
	Score           int
	HighScore       int
	ConsecutiveHits int
	Countdown       int
	Duration        int
	Difficulty      config.Difficulty
	EndReason       EndReason
	Achievements    []Achievement

	Mole            int // -1 when none
	Plant           int // -1 when none
	Special         int // -1 when none
	SpecialDeadline time.Time
}

// NopPresentation discards every update.
type NopPresentation struct{}

func (NopPresentation) RenderCell(board.Cell)           {}
func (NopPresentation) UpdateScore(int)                 {}
func (NopPresentation) UpdateTimer(int)                 {}
func (NopPresentation) ShowGameOver(int, int)           {}
func (NopPresentation) PlayCue(Cue)                     {}
func (NopPresentation) AnnounceAchievement(Achievement) {}

var _ Presentation = NopPresentation{}
