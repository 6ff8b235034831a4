package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseWhack(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	def := DefaultWhackConfig()

	if cfg.Board != def.Board {
		t.Errorf("Board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("Scoring = %+v, expected %+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Spawn != def.Spawn {
		t.Errorf("Spawn = %+v, expected %+v", cfg.Spawn, def.Spawn)
	}
	if cfg.Achievements != def.Achievements {
		t.Errorf("Achievements = %+v, expected %+v", cfg.Achievements, def.Achievements)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("Difficulty = %+v, expected %+v", cfg.Difficulty, def.Difficulty)
	}
}

func TestDifficultyPeriodScaling(t *testing.T) {
	cfg := DefaultWhackConfig()

	easy, _ := cfg.Difficulty.Level(DifficultyEasy)
	medium, _ := cfg.Difficulty.Level(DifficultyMedium)
	hard, _ := cfg.Difficulty.Level(DifficultyHard)

	if !(hard.Periods().Plant < medium.Periods().Plant && medium.Periods().Plant < easy.Periods().Plant) {
		t.Errorf("plant periods should shrink with difficulty: easy=%v medium=%v hard=%v",
			easy.Periods().Plant, medium.Periods().Plant, hard.Periods().Plant)
	}

	tests := []struct {
		d     Difficulty
		plant time.Duration
		decoy float64
	}{
		{DifficultyEasy, 2000 * time.Millisecond, 0.0},
		{DifficultyMedium, 1500 * time.Millisecond, 0.2},
		{DifficultyHard, 500 * time.Millisecond, 0.4},
	}
	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			level, ok := cfg.Difficulty.Level(tc.d)
			if !ok {
				t.Fatalf("Level(%v) not found", tc.d)
			}
			p := level.Periods()
			if p.Mole != time.Second {
				t.Errorf("Mole = %v, expected 1s", p.Mole)
			}
			if p.Special != 4*time.Second {
				t.Errorf("Special = %v, expected 4s", p.Special)
			}
			if p.Plant != tc.plant {
				t.Errorf("Plant = %v, expected %v", p.Plant, tc.plant)
			}
			if p.DecoyChance != tc.decoy {
				t.Errorf("DecoyChance = %v, expected %v", p.DecoyChance, tc.decoy)
			}
		})
	}

	if _, ok := cfg.Difficulty.Level(Difficulty(9)); ok {
		t.Error("Level should reject an unknown difficulty")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"1", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"3", DifficultyHard, false},
		{"nightmare", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseDifficulty(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownDifficulty) {
					t.Errorf("ParseDifficulty(%q) error = %v, expected ErrUnknownDifficulty", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.in, err)
			}
			if d != tc.expected {
				t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, d, tc.expected)
			}
		})
	}
}

func TestLoadWhackCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whack.yaml")
	data := []byte("board:\n  rows: 4\n  cols: 5\ndifficulty:\n  hard:\n    plant_interval_ms: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWhack(path)
	if err != nil {
		t.Fatalf("LoadWhack() failed: %v", err)
	}
	if cfg.Cells() != 20 {
		t.Errorf("Cells() = %d, expected 20", cfg.Cells())
	}
	if cfg.Difficulty.Hard.PlantIntervalMS != 250 {
		t.Errorf("hard plant interval = %d, expected 250", cfg.Difficulty.Hard.PlantIntervalMS)
	}
	// Keys not named in the file keep their defaults
	if cfg.Difficulty.Hard.MoleIntervalMS != 1000 {
		t.Errorf("hard mole interval = %d, expected default 1000", cfg.Difficulty.Hard.MoleIntervalMS)
	}
	if cfg.Scoring.HitPoints != 10 {
		t.Errorf("hit points = %d, expected default 10", cfg.Scoring.HitPoints)
	}
}

func TestLoadWhackMissingCustomPath(t *testing.T) {
	_, err := LoadWhack(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadWhack() should fail for a missing custom path")
	}
}

func TestValidateRepairsBadValues(t *testing.T) {
	cfg := WhackConfig{
		Board:   BoardConfig{Rows: 0, Cols: -2},
		Session: SessionConfig{Duration: -1, Durations: []int{0, -5}},
		Spawn: SpawnConfig{
			HighValueChance: 1.5,
			DecoyWindow:     0.1,
			SpecialMinMS:    5000,
			SpecialMaxMS:    1000,
		},
		Difficulty: DifficultyTable{
			Hard: DifficultyLevel{PlantIntervalMS: -10, DecoyChance: -1},
		},
	}
	cfg.Validate()

	if cfg.Board.Rows != 3 || cfg.Board.Cols != 3 {
		t.Errorf("board = %dx%d, expected 3x3", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Session.Duration != 60 {
		t.Errorf("duration = %d, expected 60", cfg.Session.Duration)
	}
	if len(cfg.Session.Durations) != 3 {
		t.Errorf("durations = %v, expected defaults", cfg.Session.Durations)
	}
	if cfg.ClockInterval() != time.Second {
		t.Errorf("clock interval = %v, expected 1s", cfg.ClockInterval())
	}
	if cfg.Spawn.HighValueChance != 1.0 {
		t.Errorf("high value chance = %v, expected clamp to 1.0", cfg.Spawn.HighValueChance)
	}
	if cfg.Spawn.DecoyWindow < cfg.Spawn.HighValueChance {
		t.Errorf("decoy window %v should not be below high value chance %v", cfg.Spawn.DecoyWindow, cfg.Spawn.HighValueChance)
	}
	lo, hi := cfg.SpecialLifetime()
	if hi <= lo {
		t.Errorf("special lifetime window [%v, %v) should be non-empty", lo, hi)
	}
	if cfg.Difficulty.Hard.PlantIntervalMS != 500 {
		t.Errorf("hard plant interval = %d, expected default 500", cfg.Difficulty.Hard.PlantIntervalMS)
	}
	if cfg.Difficulty.Hard.DecoyChance != 0 {
		t.Errorf("hard decoy chance = %v, expected clamp to 0", cfg.Difficulty.Hard.DecoyChance)
	}
}

func TestValidateCapsBoardSize(t *testing.T) {
	tests := []struct {
		rows, cols         int
		wantRows, wantCols int
	}{
		{100000, 4, MaxBoardSide, 4},
		{2, 1 << 30, 2, MaxBoardSide},
		{MaxBoardSide, MaxBoardSide, MaxBoardSide, MaxBoardSide},
		{1, 1, 1, 1},
	}
	for _, tc := range tests {
		cfg := DefaultWhackConfig()
		cfg.Board = BoardConfig{Rows: tc.rows, Cols: tc.cols}
		cfg.Validate()
		if cfg.Board.Rows != tc.wantRows || cfg.Board.Cols != tc.wantCols {
			t.Errorf("Validate(%dx%d) board = %dx%d, expected %dx%d",
				tc.rows, tc.cols, cfg.Board.Rows, cfg.Board.Cols, tc.wantRows, tc.wantCols)
		}
	}
}

func TestDifficultyNextCycles(t *testing.T) {
	tests := []struct {
		from, expected Difficulty
	}{
		{DifficultyEasy, DifficultyMedium},
		{DifficultyMedium, DifficultyHard},
		{DifficultyHard, DifficultyEasy},
		{Difficulty(0), DifficultyEasy},
	}
	for _, tc := range tests {
		if got := tc.from.Next(); got != tc.expected {
			t.Errorf("%v.Next() = %v, expected %v", tc.from, got, tc.expected)
		}
	}
	if DifficultyHard.Title() != "Hard" {
		t.Errorf("Title() = %q, expected Hard", DifficultyHard.Title())
	}
}
