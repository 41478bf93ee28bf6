// Package records keeps a history of completed runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package records

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// FileName is the database file inside the app data directory.
const FileName = "records.db"

// Run is one playthrough that reached the victory screen.
type Run struct {
	ID          int64
	Deaths      int
	Levels      int
	Duration    time.Duration
	CompletedAt time.Time
}

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at dbPath, creating parent directories
// and the schema as needed.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("records: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("records: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deaths INTEGER NOT NULL,
			levels INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			completed_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_deaths ON runs(deaths, duration_ms);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a completed run and returns its ID.
func (s *Store) Save(run Run) (int64, error) {
	if run.CompletedAt.IsZero() {
		run.CompletedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (deaths, levels, duration_ms, completed_at) VALUES (?, ?, ?, ?)",
		run.Deaths, run.Levels, run.Duration.Milliseconds(), run.CompletedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("records: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("records: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Best returns the run with the fewest deaths, the faster one on ties.
// ok is false when no run has been recorded.
func (s *Store) Best() (run Run, ok bool, err error) {
	row := s.db.QueryRow(
		`SELECT id, deaths, levels, duration_ms, completed_at
		 FROM runs
		 ORDER BY deaths ASC, duration_ms ASC
		 LIMIT 1`,
	)
	run, err = scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("records: cannot query best run: %w", err)
	}
	return run, true, nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, deaths, levels, duration_ms, completed_at
		 FROM runs
		 ORDER BY completed_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("records: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("records: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run        Run
		durationMS int64
		completed  int64
	)
	if err := sc.Scan(&run.ID, &run.Deaths, &run.Levels, &durationMS, &completed); err != nil {
		return Run{}, err
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.CompletedAt = time.Unix(completed, 0)
	return run, nil
}
