package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tutsync/internal/domain"
	"tutsync/internal/ports"

	_ "modernc.org/sqlite"
)

// Journal implements ports.Journal using SQLite
type Journal struct {
	db *sql.DB
}

// Ensure Journal implements the port
var _ ports.Journal = (*Journal)(nil)

// Open creates or opens the journal database at path
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version TEXT NOT NULL,
			refreshed INTEGER NOT NULL,
			added INTEGER NOT NULL,
			removed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_ops (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			kind TEXT NOT NULL,
			name TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_run_ops_run ON run_ops(run_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup journal: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record persists one applied sync run and its per-file ops atomically
func (j *Journal) Record(rec *domain.SyncRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin journal tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.Exec(`
		INSERT INTO runs (version, refreshed, added, removed, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.Version, rec.Refreshed, rec.Added, rec.Removed,
		rec.StartedAt.Unix(), rec.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, op := range rec.Ops {
		if _, err := tx.Exec(`
			INSERT INTO run_ops (run_id, kind, name) VALUES (?, ?, ?)
		`, runID, op.Kind.String(), op.Name); err != nil {
			return fmt.Errorf("failed to insert op: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit journal tx: %w", err)
	}
	rec.ID = runID
	return nil
}

// Recent returns up to limit runs, newest first
func (j *Journal) Recent(limit int) ([]domain.SyncRecord, error) {
	rows, err := j.db.Query(`
		SELECT id, version, refreshed, added, removed, started_at, duration_ms
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []domain.SyncRecord
	for rows.Next() {
		var rec domain.SyncRecord
		var startedAt int64
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.Version, &rec.Refreshed, &rec.Added,
			&rec.Removed, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.StartedAt = time.Unix(startedAt, 0)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	return records, rows.Err()
}
