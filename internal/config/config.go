// Package config provides YAML-based game configuration loading and
// difficulty management for Whack-a-Mole.
package config

import "time"

// WhackConfig contains all configuration for the Whack-a-Mole game.
type WhackConfig struct {
	Board        BoardConfig       `yaml:"board"`
	Session      SessionConfig     `yaml:"session"`
	Scoring      ScoringConfig     `yaml:"scoring"`
	Spawn        SpawnConfig       `yaml:"spawn"`
	Achievements AchievementConfig `yaml:"achievements"`
	Difficulty   DifficultyTable   `yaml:"difficulty"`
}

// MaxBoardSide caps rows and cols so a board still fits a terminal.
const MaxBoardSide = 9

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SessionConfig defines round length and the countdown tick.
type SessionConfig struct {
	Duration        int   `yaml:"duration"`  // Default round length in seconds
	Durations       []int `yaml:"durations"` // Choices offered by the setup menu
	ClockIntervalMS int   `yaml:"clock_interval_ms"`
}

// ScoringConfig defines points and the streak needed for the streak achievement.
type ScoringConfig struct {
	HitPoints     int `yaml:"hit_points"`
	SpecialPoints int `yaml:"special_points"`
	StreakTarget  int `yaml:"streak_target"`
}

// SpawnConfig defines the mole roll and the special mole lifetime window.
type SpawnConfig struct {
	HighValueChance float64 `yaml:"high_value_chance"`
	DecoyWindow     float64 `yaml:"decoy_window"`
	SpecialMinMS    int     `yaml:"special_min_ms"`
	SpecialMaxMS    int     `yaml:"special_max_ms"`
}

// AchievementConfig defines the unlock thresholds.
type AchievementConfig struct {
	NoviceScore       int `yaml:"novice_score"`
	MasterScore       int `yaml:"master_score"`
	TimeKeeperSeconds int `yaml:"time_keeper_seconds"`
}

// DifficultyTable holds one level per difficulty.
type DifficultyTable struct {
	Easy   DifficultyLevel `yaml:"easy"`
	Medium DifficultyLevel `yaml:"medium"`
	Hard   DifficultyLevel `yaml:"hard"`
}

// DifficultyLevel defines spawn periods and the decoy probability for one difficulty.
type DifficultyLevel struct {
	MoleIntervalMS    int     `yaml:"mole_interval_ms"`
	PlantIntervalMS   int     `yaml:"plant_interval_ms"`
	SpecialIntervalMS int     `yaml:"special_interval_ms"`
	DecoyChance       float64 `yaml:"decoy_chance"`
}

// Periods is a DifficultyLevel resolved to durations.
type Periods struct {
	Mole        time.Duration
	Plant       time.Duration
	Special     time.Duration
	DecoyChance float64
}

// Periods returns the level as durations.
func (l DifficultyLevel) Periods() Periods {
	return Periods{
		Mole:        time.Duration(l.MoleIntervalMS) * time.Millisecond,
		Plant:       time.Duration(l.PlantIntervalMS) * time.Millisecond,
		Special:     time.Duration(l.SpecialIntervalMS) * time.Millisecond,
		DecoyChance: l.DecoyChance,
	}
}

// Level returns the level for d. The second result is false for an
// unrecognized difficulty, in which case the zero level is returned.
func (t DifficultyTable) Level(d Difficulty) (DifficultyLevel, bool) {
	switch d {
	case DifficultyEasy:
		return t.Easy, true
	case DifficultyMedium:
		return t.Medium, true
	case DifficultyHard:
		return t.Hard, true
	default:
		return DifficultyLevel{}, false
	}
}

// Cells returns the number of cells on the board.
func (c WhackConfig) Cells() int {
	return c.Board.Rows * c.Board.Cols
}

// ClockInterval returns the countdown tick period.
func (c WhackConfig) ClockInterval() time.Duration {
	return time.Duration(c.Session.ClockIntervalMS) * time.Millisecond
}

// SpecialLifetime returns the [min, max) window of a special mole's lifetime.
func (c WhackConfig) SpecialLifetime() (time.Duration, time.Duration) {
	return time.Duration(c.Spawn.SpecialMinMS) * time.Millisecond,
		time.Duration(c.Spawn.SpecialMaxMS) * time.Millisecond
}
