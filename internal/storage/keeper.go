package storage

import (
	"github.com/vovakirdan/tui-whack/internal/engine"
)

// Keeper binds a Store to one game so it can serve as the engine's
// high-score persistence and session recorder.
type Keeper struct {
	store  *Store
	gameID string
}

var (
	_ engine.Persistence = (*Keeper)(nil)
	_ engine.Recorder    = (*Keeper)(nil)
)

// NewKeeper returns a Keeper for gameID.
func NewKeeper(store *Store, gameID string) *Keeper {
	return &Keeper{store: store, gameID: gameID}
}

// HighScore implements engine.Persistence.
func (k *Keeper) HighScore() (int, error) {
	return k.store.HighScore(k.gameID)
}

// SetHighScore implements engine.Persistence.
func (k *Keeper) SetHighScore(score int) error {
	return k.store.SetHighScore(k.gameID, score)
}

// RecordSession implements engine.Recorder.
func (k *Keeper) RecordSession(sum engine.Summary) error {
	names := make([]string, len(sum.Achievements))
	for i, a := range sum.Achievements {
		names[i] = string(a)
	}

	_, err := k.store.SaveSession(SessionRecord{
		GameID:       k.gameID,
		Difficulty:   sum.Difficulty.String(),
		Duration:     sum.Duration,
		Score:        sum.Score,
		Hits:         sum.Hits,
		Bonuses:      sum.Bonuses,
		Misses:       sum.Misses,
		EndReason:    string(sum.EndReason),
		Achievements: names,
	})
	return err
}
