package engine

import (
	"context"
	"time"
)

// tick is the countdown task. The game ends on the tick that reaches zero.
func (s *Session) tick(time.Time) {
	if !s.state.gameOver && s.state.countdown > 0 {
		s.state.countdown--
		s.view.UpdateTimer(s.state.countdown)
		s.checkAchievements()
	}
	if s.state.countdown == 0 {
		s.state.gameOver = true
		s.endGame(EndTimeout)
	}
}

// Run drives the session from a ticker until the game ends or ctx is
// done. Hosts with their own frame loop call Tick instead.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Tick()
			if !s.Running() {
				return nil
			}
		}
	}
}
