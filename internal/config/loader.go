package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWhack loads Whack-a-Mole configuration.
// Search order: customPath -> ~/.whack/configs/whack.yaml -> ./configs/whack.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a partial file only
// overrides the keys it names. The result is always validated.
func LoadWhack(customPath string) (WhackConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultWhackConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseWhack(data)
		if err != nil {
			return DefaultWhackConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("whack.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseWhack(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/whack.yaml"); err == nil {
		if cfg, err := parseWhack(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseWhack(defaultWhackYAML)
	if err != nil {
		return DefaultWhackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseWhack decodes data over the defaults and validates the result.
func parseWhack(data []byte) (WhackConfig, error) {
	cfg := DefaultWhackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".whack", "configs", filename)
}

// Validate replaces unusable values with defaults so a bad file never
// produces a board without cells or a timer without a period.
func (c *WhackConfig) Validate() {
	def := DefaultWhackConfig()

	if c.Board.Rows < 1 {
		c.Board.Rows = def.Board.Rows
	}
	if c.Board.Cols < 1 {
		c.Board.Cols = def.Board.Cols
	}
	c.Board.Rows = min(c.Board.Rows, MaxBoardSide)
	c.Board.Cols = min(c.Board.Cols, MaxBoardSide)

	if c.Session.Duration < 1 {
		c.Session.Duration = def.Session.Duration
	}
	durations := c.Session.Durations[:0:0]
	for _, d := range c.Session.Durations {
		if d > 0 {
			durations = append(durations, d)
		}
	}
	if len(durations) == 0 {
		durations = def.Session.Durations
	}
	c.Session.Durations = durations
	if c.Session.ClockIntervalMS < 1 {
		c.Session.ClockIntervalMS = def.Session.ClockIntervalMS
	}

	if c.Scoring.StreakTarget < 1 {
		c.Scoring.StreakTarget = def.Scoring.StreakTarget
	}

	c.Spawn.HighValueChance = clampF(c.Spawn.HighValueChance, 0.0, 1.0)
	c.Spawn.DecoyWindow = clampF(c.Spawn.DecoyWindow, c.Spawn.HighValueChance, 1.0)
	if c.Spawn.SpecialMinMS < 1 {
		c.Spawn.SpecialMinMS = def.Spawn.SpecialMinMS
	}
	if c.Spawn.SpecialMaxMS <= c.Spawn.SpecialMinMS {
		c.Spawn.SpecialMaxMS = c.Spawn.SpecialMinMS + 1
	}

	validateLevel(&c.Difficulty.Easy, def.Difficulty.Easy)
	validateLevel(&c.Difficulty.Medium, def.Difficulty.Medium)
	validateLevel(&c.Difficulty.Hard, def.Difficulty.Hard)
}

func validateLevel(l *DifficultyLevel, def DifficultyLevel) {
	if l.MoleIntervalMS < 1 {
		l.MoleIntervalMS = def.MoleIntervalMS
	}
	if l.PlantIntervalMS < 1 {
		l.PlantIntervalMS = def.PlantIntervalMS
	}
	if l.SpecialIntervalMS < 1 {
		l.SpecialIntervalMS = def.SpecialIntervalMS
	}
	l.DecoyChance = clampF(l.DecoyChance, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
