// Package storage persists finished Lines runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     string
	Score     int
	Moves     int
	CreatedAt time.Time
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a run with only a score and a fresh run ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRun(gameID, "", score, 0)
}

// SaveRun records a finished run. An empty runID gets a new UUID.
// Saving the same runID twice fails.
func (s *Store) SaveRun(gameID, runID string, score, moves int) (int64, error) {
	if runID == "" {
		runID = uuid.NewString()
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, run_id, score, moves) VALUES (?, ?, ?, ?)",
		gameID, runID, score, moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run %s: %w", runID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RunByID returns the run with the given ID, or nil if there is none.
func (s *Store) RunByID(runID string) (*ScoreEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, run_id, score, moves, created_at
		 FROM scores WHERE run_id = ?`,
		runID,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &e, nil
}

// TopScores retrieves the top N runs for the given game, best first.
// Ties go to the earlier run.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryEntries(
		`SELECT id, game_id, run_id, score, moves, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// AllScores retrieves all runs for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryEntries(
		`SELECT id, game_id, run_id, score, moves, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
}

func (s *Store) queryEntries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	if err := sc.Scan(&e.ID, &e.GameID, &e.RunID, &e.Score, &e.Moves, &createdAt); err != nil {
		return e, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime accepts what the driver returns for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalMoves int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
// A game without runs yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(moves), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// GetAllGamesStats retrieves statistics for every game that has runs.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), SUM(moves), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &gs.TotalMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
