// Package storage provides SQLite-based persistence for high scores and
// session history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished game.
type SessionRecord struct {
	ID           string
	GameID       string
	Difficulty   string
	Duration     int // Selected round length in seconds
	Score        int
	Hits         int
	Bonuses      int
	Misses       int
	EndReason    string // "timeout", "hazard", "quit"
	Achievements []string
	CreatedAt    time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalScore   int
	HazardEnds   int
	LastPlayed   time.Time
	Achievements map[string]int // Unlock counts by name
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			duration_secs INTEGER NOT NULL,
			score INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			bonuses INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, score DESC)`,
		`CREATE TABLE IF NOT EXISTS session_achievements (
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			PRIMARY KEY (session_id, name)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the stored high score for the given game.
// Returns 0 if none has been stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// SetHighScore records score as the high score for the given game. A score
// that does not beat the stored one leaves the row unchanged.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveSession records a finished game and its achievements in one
// transaction. An empty rec.ID is replaced by a new UUID, which is returned.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	_, err = tx.Exec(
		`INSERT INTO sessions
		 (id, game_id, difficulty, duration_secs, score, hits, bonuses, misses, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Difficulty, rec.Duration, rec.Score,
		rec.Hits, rec.Bonuses, rec.Misses, rec.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	for _, name := range rec.Achievements {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO session_achievements (session_id, name) VALUES (?, ?)",
			rec.ID, name,
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save achievement %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return rec.ID, nil
}

// TopSessions retrieves the best limit sessions for the given game,
// ordered by score descending, newest first among equal scores.
func (s *Store) TopSessions(gameID string, limit int) ([]SessionRecord, error) {
	return s.querySessions(
		`ORDER BY score DESC, created_at DESC, rowid DESC LIMIT ?`,
		gameID, limit,
	)
}

// RecentSessions retrieves the last limit sessions for the given game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	return s.querySessions(
		`ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) querySessions(order, gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, difficulty, duration_secs, score, hits, bonuses, misses, end_reason, created_at
		 FROM sessions
		 WHERE game_id = ? `+order,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Difficulty, &r.Duration, &r.Score,
			&r.Hits, &r.Bonuses, &r.Misses, &r.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range out {
		names, err := s.sessionAchievements(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Achievements = names
	}
	return out, nil
}

func (s *Store) sessionAchievements(sessionID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT name FROM session_achievements WHERE session_id = ? ORDER BY rowid",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan achievement: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ClearScores deletes the high score and every session of the given game.
func (s *Store) ClearScores(gameID string) error {
	stmts := []string{
		`DELETE FROM session_achievements
		 WHERE session_id IN (SELECT id FROM sessions WHERE game_id = ?)`,
		"DELETE FROM sessions WHERE game_id = ?",
		"DELETE FROM high_scores WHERE game_id = ?",
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt, gameID); err != nil {
			return fmt.Errorf("storage: cannot clear scores: %w", err)
		}
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID, Achievements: make(map[string]int)}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'hazard' THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.HazardEnds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	// The stored high score survives sessions recorded before history existed
	if high, err := s.HighScore(gameID); err == nil && high > stats.HighScore {
		stats.HighScore = high
	}

	rows, err := s.db.Query(
		`SELECT a.name, COUNT(*)
		 FROM session_achievements a JOIN sessions s ON s.id = a.session_id
		 WHERE s.game_id = ?
		 GROUP BY a.name`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count achievements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan achievement count: %w", err)
		}
		stats.Achievements[name] = n
	}
	return stats, rows.Err()
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, strings.TrimSpace(t)); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
