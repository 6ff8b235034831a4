package config

import (
	_ "embed"
)

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

// DefaultWhackConfig returns the default Whack-a-Mole configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Board: BoardConfig{
			Rows: 3,
			Cols: 3,
		},
		Session: SessionConfig{
			Duration:        60,
			Durations:       []int{30, 60, 90},
			ClockIntervalMS: 1000,
		},
		Scoring: ScoringConfig{
			HitPoints:     10,
			SpecialPoints: 20,
			StreakTarget:  4,
		},
		Spawn: SpawnConfig{
			HighValueChance: 0.2,
			DecoyWindow:     0.5,
			SpecialMinMS:    3000,
			SpecialMaxMS:    8000,
		},
		Achievements: AchievementConfig{
			NoviceScore:       100,
			MasterScore:       200,
			TimeKeeperSeconds: 30,
		},
		Difficulty: DifficultyTable{
			Easy: DifficultyLevel{
				MoleIntervalMS:    1000,
				PlantIntervalMS:   2000,
				SpecialIntervalMS: 4000,
				DecoyChance:       0.0,
			},
			Medium: DifficultyLevel{
				MoleIntervalMS:    1000,
				PlantIntervalMS:   1500,
				SpecialIntervalMS: 4000,
				DecoyChance:       0.2,
			},
			Hard: DifficultyLevel{
				MoleIntervalMS:    1000,
				PlantIntervalMS:   500,
				SpecialIntervalMS: 4000,
				DecoyChance:       0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWhackYAML
}
