package engine

import "github.com/vovakirdan/tui-whack/internal/board"

// Select handles the player choosing cell id. The current mole is checked
// first, then the current plant, then any special mole; anything else is a
// miss and breaks the hit streak. Selections are ignored when no game is
// running or id is off the board.
func (s *Session) Select(id int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active() || s.state.gameOver || !s.board.Valid(id) {
		return OutcomeIgnored
	}

	var out Outcome
	switch {
	case id == s.spawn.mole:
		s.state.score += s.cfg.Scoring.HitPoints
		s.state.hits++
		s.state.totalHits++
		s.view.UpdateScore(s.state.score)
		s.view.PlayCue(CueHit)
		s.clearRef(&s.spawn.mole, board.Mole)
		if s.state.hits >= s.cfg.Scoring.StreakTarget {
			s.unlock(MoleWhackerMaster)
		}
		out = OutcomeHit

	case id == s.spawn.plant:
		s.state.gameOver = true
		s.view.PlayCue(CueGameOver)
		s.logger.Info("hazard selected", "cell", id, "score", s.state.score)
		s.endGame(EndHazard)
		return OutcomeHazard

	case s.board.Cell(id).Occupant == board.Special:
		// The hit streak is neither extended nor broken by a bonus
		s.state.score += s.cfg.Scoring.SpecialPoints
		s.state.bonuses++
		s.view.UpdateScore(s.state.score)
		s.view.PlayCue(CueHit)
		s.spawn.expiry.Stop()
		s.spawn.expiry = nil
		s.clearRef(&s.spawn.special, board.Special)
		out = OutcomeBonus

	default:
		s.state.hits = 0
		s.state.misses++
		out = OutcomeMiss
	}

	s.checkAchievements()
	return out
}
