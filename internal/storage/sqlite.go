// Package storage provides SQLite-based persistence for saves and completed
// runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-clicker/internal/save"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one won game: how long it took to reach the win amount.
type Run struct {
	ID        int64
	Player    string
	Elapsed   float64 // seconds of play
	Clicks    int64
	WinAmount int64
	CreatedAt time.Time
}

// RunStats contains aggregated statistics over all recorded runs.
type RunStats struct {
	Count       int
	Fastest     float64
	AvgElapsed  float64
	TotalClicks int64
	LastPlayed  time.Time
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
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			elapsed_secs REAL NOT NULL,
			clicks INTEGER NOT NULL DEFAULT 0,
			win_amount INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(elapsed_secs ASC);
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

// WriteSave stores the save document for slot, replacing any previous one.
func (s *Store) WriteSave(ctx context.Context, slot string, doc []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		slot, string(doc),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write save: %w", err)
	}
	return nil
}

// ReadSave returns the save document for slot.
func (s *Store) ReadSave(ctx context.Context, slot string) ([]byte, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM saves WHERE slot = ?", slot).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, save.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read save: %w", err)
	}
	return []byte(doc), nil
}

// DeleteSave removes the save in slot.
func (s *Store) DeleteSave(ctx context.Context, slot string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	if n == 0 {
		return save.ErrNoSave
	}
	return nil
}

// Slots lists the slots that hold a save.
func (s *Store) Slots(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT slot FROM saves ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

var _ save.Backend = (*Store)(nil)

// RecordRun stores a won run. Returns the ID of the inserted record.
func (s *Store) RecordRun(ctx context.Context, run Run) (int64, error) {
	if run.Player == "" {
		run.Player = "anonymous"
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (player, elapsed_secs, clicks, win_amount) VALUES (?, ?, ?, ?)",
		run.Player, run.Elapsed, run.Clicks, run.WinAmount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// FastestRuns retrieves the N fastest runs, quickest first.
func (s *Store) FastestRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, elapsed_secs, clicks, win_amount, created_at
		 FROM runs
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Elapsed, &r.Clicks, &r.WinAmount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the fastest run, or nil if none were recorded.
func (s *Store) BestRun(ctx context.Context) (*Run, error) {
	runs, err := s.FastestRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{}

	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MIN(elapsed_secs), 0), COALESCE(AVG(elapsed_secs), 0),
		        COALESCE(SUM(clicks), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Count, &stats.Fastest, &stats.AvgElapsed, &stats.TotalClicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning DATETIME as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
