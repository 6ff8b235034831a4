package engine

import "github.com/vovakirdan/tui-whack/internal/config"

// Achievement is a one-shot unlock, named as shown to the player.
type Achievement string

const (
	NoviceWhacker     Achievement = "Novice Whacker"
	MasterWhacker     Achievement = "Master Whacker"
	TimeKeeper        Achievement = "Time Keeper"
	MoleWhackerMaster Achievement = "Mole Whacker Master"
)

// Achievements lists every achievement in display order.
func Achievements() []Achievement {
	return []Achievement{NoviceWhacker, MasterWhacker, TimeKeeper, MoleWhackerMaster}
}

// Description returns the unlock condition shown to the player.
func (a Achievement) Description() string {
	switch a {
	case NoviceWhacker:
		return "Reach 100 points"
	case MasterWhacker:
		return "Reach 200 points"
	case TimeKeeper:
		return "Play into the last 30 seconds"
	case MoleWhackerMaster:
		return "Hit 4 moles in a row"
	default:
		return ""
	}
}

// Evaluate returns the threshold achievements satisfied by score and
// countdown. It holds no state; one-shot bookkeeping is the caller's.
func Evaluate(score, countdown int, th config.AchievementConfig) []Achievement {
	var out []Achievement
	if score >= th.NoviceScore {
		out = append(out, NoviceWhacker)
	}
	if score >= th.MasterScore {
		out = append(out, MasterWhacker)
	}
	if countdown <= th.TimeKeeperSeconds {
		out = append(out, TimeKeeper)
	}
	return out
}

// checkAchievements unlocks every threshold currently met.
func (s *Session) checkAchievements() {
	for _, a := range Evaluate(s.state.score, s.state.countdown, s.cfg.Achievements) {
		s.unlock(a)
	}
}

// unlock records a at most once per session and announces it.
func (s *Session) unlock(a Achievement) bool {
	if s.state.unlocked[a] {
		return false
	}
	s.state.unlocked[a] = true
	s.state.order = append(s.state.order, a)
	s.view.AnnounceAchievement(a)
	s.logger.Info("achievement unlocked", "achievement", string(a), "score", s.state.score)
	return true
}
