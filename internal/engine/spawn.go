package engine

import (
	"time"

	"github.com/vovakirdan/tui-whack/internal/board"
)

// spawnSource picks spawn cells and rolls spawn probabilities.
// *board.Placer is the production source.
type spawnSource interface {
	Pick() int
	Float64() float64
	Int63n(n int64) int64
}

// spawnMole moves the regular mole. The previous mole is always removed,
// even when the new pick collides and the spawn is abandoned.
func (s *Session) spawnMole(time.Time) {
	if s.state.gameOver {
		return
	}
	s.clearRef(&s.spawn.mole, board.Mole)

	// A colliding pick must not consume a variant draw.
	id := s.placer.Pick()
	if !s.board.CanPlace(id, board.Mole) {
		s.logger.Debug("mole spawn skipped", "cell", id, "occupant", s.board.Cell(id).Occupant.String())
		return
	}
	if err := s.board.Place(id, board.Mole, s.rollVariant()); err != nil {
		s.logger.Debug("mole spawn skipped", "err", err)
		return
	}
	s.spawn.mole = id
	s.view.RenderCell(s.board.Cell(id))
}

// rollVariant decides how a fresh mole looks. A single draw below the
// high-value chance wins; a draw inside the decoy window gets a second draw
// against the difficulty's decoy chance.
func (s *Session) rollVariant() board.Variant {
	r := s.placer.Float64()
	switch {
	case r < s.cfg.Spawn.HighValueChance:
		return board.HighValue
	case r < s.cfg.Spawn.DecoyWindow:
		if p := s.periods.DecoyChance; p > 0 && s.placer.Float64() < p {
			return board.Decoy
		}
	}
	return board.Plain
}

// spawnPlant moves the hazard. It never lands on the current mole.
func (s *Session) spawnPlant(time.Time) {
	if s.state.gameOver {
		return
	}
	s.clearRef(&s.spawn.plant, board.Plant)

	id := s.placer.Pick()
	if id == s.spawn.mole {
		s.logger.Debug("plant spawn skipped", "cell", id, "occupant", board.Mole.String())
		return
	}
	if err := s.board.Place(id, board.Plant, board.Plain); err != nil {
		s.logger.Debug("plant spawn skipped", "err", err)
		return
	}
	s.spawn.plant = id
	s.view.RenderCell(s.board.Cell(id))
}

// spawnSpecial places a bonus mole when none is live and arms its expiry.
func (s *Session) spawnSpecial(time.Time) {
	if s.state.gameOver || s.spawn.special >= 0 {
		return
	}

	id := s.placer.Pick()
	if err := s.board.Place(id, board.Special, board.Plain); err != nil {
		s.logger.Debug("special spawn skipped", "err", err)
		return
	}
	s.spawn.special = id
	s.view.RenderCell(s.board.Cell(id))

	life := s.specialLifetime()
	s.spawn.expiry = s.sched.After(life, s.expireSpecial)
	s.logger.Debug("special spawned", "cell", id, "lifetime", life)
}

// specialLifetime draws a whole-millisecond lifetime in [min, max).
func (s *Session) specialLifetime() time.Duration {
	lo, hi := s.cfg.SpecialLifetime()
	span := int64((hi - lo) / time.Millisecond)
	if span <= 0 {
		return lo
	}
	return lo + time.Duration(s.placer.Int63n(span))*time.Millisecond
}

// expireSpecial removes a bonus mole that was not hit in time.
func (s *Session) expireSpecial(time.Time) {
	s.spawn.expiry = nil
	s.clearRef(&s.spawn.special, board.Special)
}

// clearRef empties the referenced cell if it still holds occ and drops the
// reference.
func (s *Session) clearRef(ref *int, occ board.Occupant) {
	id := *ref
	if id < 0 {
		return
	}
	*ref = -1
	if s.board.Cell(id).Occupant == occ {
		s.board.Clear(id)
		s.view.RenderCell(s.board.Cell(id))
	}
}
