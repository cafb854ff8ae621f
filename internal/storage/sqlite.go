// Package storage keeps campaign scores and the per-level run ledger in a
// SQLite file, using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is safe for concurrent use; every SSH session shares one.
type Store struct {
	db *sql.DB
}

type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RunRecord is one finished attempt at a level.
type RunRecord struct {
	ID        int64
	GameID    string
	LevelID   string
	Status    string // "won" or "lost"
	Ticks     int
	Coins     int
	CreatedAt time.Time
}

// LevelStats sums up the ledger for one level.
type LevelStats struct {
	LevelID   string
	Attempts  int
	Wins      int
	BestTicks int // fewest ticks of a winning attempt, 0 when never won
	MaxCoins  int
}

type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// migrations[i] moves the schema from user_version i to i+1.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,

	`CREATE TABLE IF NOT EXISTS runs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		level_id   TEXT    NOT NULL,
		status     TEXT    NOT NULL CHECK (status IN ('won', 'lost')),
		ticks      INTEGER NOT NULL DEFAULT 0,
		coins      INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_game_level ON runs(game_id, level_id);`,
}

// Open opens the database at path, creating it and its directory when
// missing. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expanding %s: %w", path, err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("storage: opening %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: preparing %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for v := version; v < len(migrations); v++ {
		if _, err := s.db.Exec(migrations[v]); err != nil {
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) insert(query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](db *sql.DB, scan func(*sql.Rows) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// SaveScore banks a finished campaign.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	id, err := s.insert("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: saving score: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores, best first; ties go to the older
// score. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := queryAll(s.db, func(r *sql.Rows) (ScoreEntry, error) {
		var e ScoreEntry
		var at any
		err := r.Scan(&e.ID, &e.GameID, &e.Score, &at)
		e.CreatedAt = parseTime(at)
		return e, err
	}, `SELECT id, game_id, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	return entries, nil
}

// HighScore is the best score of a game, 0 when none was saved.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow("SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return best, nil
}

// ClearScores forgets a game's scores and runs together.
func (s *Store) ClearScores(gameID string) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clearing %s: %w", gameID, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			err = fmt.Errorf("storage: clearing %s: %w", gameID, err)
		}
	}()

	for _, table := range []string{"scores", "runs"} {
		if _, err = tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveRun appends one level attempt to the ledger. Status must be "won"
// or "lost".
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	id, err := s.insert(`INSERT INTO runs (game_id, level_id, status, ticks, coins) VALUES (?, ?, ?, ?, ?)`,
		run.GameID, run.LevelID, run.Status, run.Ticks, run.Coins)
	if err != nil {
		return 0, fmt.Errorf("storage: saving run of %s: %w", run.LevelID, err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs of a game, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	runs, err := queryAll(s.db, func(r *sql.Rows) (RunRecord, error) {
		var run RunRecord
		var at any
		err := r.Scan(&run.ID, &run.GameID, &run.LevelID, &run.Status, &run.Ticks, &run.Coins, &at)
		run.CreatedAt = parseTime(at)
		return run, err
	}, `SELECT id, game_id, level_id, status, ticks, coins, created_at FROM runs
		WHERE game_id = ? ORDER BY id DESC LIMIT ?`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: recent runs: %w", err)
	}
	return runs, nil
}

// LevelStats summarises the ledger of a game per level, by level ID.
func (s *Store) LevelStats(gameID string) ([]LevelStats, error) {
	stats, err := queryAll(s.db, func(r *sql.Rows) (LevelStats, error) {
		var ls LevelStats
		err := r.Scan(&ls.LevelID, &ls.Attempts, &ls.Wins, &ls.BestTicks, &ls.MaxCoins)
		return ls, err
	}, `SELECT level_id, COUNT(*),
			COALESCE(SUM(status = 'won'), 0),
			COALESCE(MIN(CASE WHEN status = 'won' THEN ticks END), 0),
			COALESCE(MAX(coins), 0)
		FROM runs WHERE game_id = ?
		GROUP BY level_id ORDER BY level_id`, gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: level stats: %w", err)
	}
	return stats, nil
}

// GetGameStats sums up the saved scores of a game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		FROM scores WHERE game_id = ?`, gameID).Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: game stats: %w", err)
	}

	var last any
	err = s.db.QueryRow("SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1", gameID).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: game stats: %w", err)
	default:
		st.LastPlayed = parseTime(last)
	}
	return st, nil
}

// parseTime accepts what the driver returns for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.DateTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
