// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished simulation. Grid contents are never
// stored.
type Run struct {
	ID                string // UUID, assigned by SaveRun when empty
	Frontend          string
	Width             int
	Height            int
	Generations       int
	InitialPopulation int
	FinalPopulation   int
	FinalDelay        time.Duration
	StopReason        string
	Duration          time.Duration
	CreatedAt         time.Time
}

// RunStats contains aggregated statistics over recorded runs.
type RunStats struct {
	Frontend         string // Empty for stats across all frontends
	Runs             int
	TotalGenerations int64
	MaxGenerations   int
	AvgGenerations   float64
	StableRuns       int
	LastRun          time.Time
}

const selectRun = `SELECT id, frontend, width, height, generations, initial_population,
	        final_population, final_delay_ms, stop_reason, duration_ms, created_at
	 FROM runs`

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
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			frontend TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			generations INTEGER NOT NULL DEFAULT 0,
			initial_population INTEGER NOT NULL DEFAULT 0,
			final_population INTEGER NOT NULL DEFAULT 0,
			final_delay_ms INTEGER NOT NULL DEFAULT 0,
			stop_reason TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_frontend ON runs(frontend);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, frontend, width, height, generations, initial_population,
		  final_population, final_delay_ms, stop_reason, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Frontend,
		r.Width,
		r.Height,
		r.Generations,
		r.InitialPopulation,
		r.FinalPopulation,
		r.FinalDelay.Milliseconds(),
		r.StopReason,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty frontend matches every frontend.
func (s *Store) RecentRuns(frontend string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		selectRun+`
		 WHERE ? = '' OR frontend = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		frontend, frontend, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ErrAmbiguousID is returned by RunByID when a prefix matches several runs.
var ErrAmbiguousID = errors.New("storage: run id prefix matches more than one run")

// ShortIDLen is the number of ID characters shown in run listings.
const ShortIDLen = 8

// ShortID returns the listing form of a run ID. RunByID accepts it back.
func ShortID(id string) string {
	if len(id) > ShortIDLen {
		return id[:ShortIDLen]
	}
	return id
}

// RunByID retrieves a run by its full ID or by a unique ID prefix such as
// the one ShortID prints. Returns nil if no run matches.
func (s *Store) RunByID(id string) (*Run, error) {
	if id == "" {
		return nil, nil
	}

	r, err := scanRun(s.db.QueryRow(selectRun+` WHERE id = ?`, id))
	if err == nil {
		return &r, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	rows, err := s.db.Query(
		selectRun+` WHERE id LIKE ? ESCAPE '\' ORDER BY seq DESC LIMIT 2`,
		escapeLike(id)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var matches []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, id)
	}
}

// escapeLike quotes LIKE wildcards so an ID is matched literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

// Stats retrieves aggregated statistics. An empty frontend aggregates
// across every frontend.
func (s *Store) Stats(frontend string) (*RunStats, error) {
	stats := &RunStats{Frontend: frontend}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(generations), 0), COALESCE(MAX(generations), 0),
		        COALESCE(AVG(generations), 0),
		        COALESCE(SUM(CASE WHEN stop_reason = 'stable' THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM runs WHERE ? = '' OR frontend = ?`,
		frontend, frontend,
	).Scan(&stats.Runs, &stats.TotalGenerations, &stats.MaxGenerations,
		&stats.AvgGenerations, &stats.StableRuns, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// ClearRuns deletes recorded runs. An empty frontend deletes all of them.
func (s *Store) ClearRuns(frontend string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR frontend = ?", frontend, frontend)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var delayMS, durationMS int64
	var createdAt any

	err := sc.Scan(
		&r.ID,
		&r.Frontend,
		&r.Width,
		&r.Height,
		&r.Generations,
		&r.InitialPopulation,
		&r.FinalPopulation,
		&delayMS,
		&r.StopReason,
		&durationMS,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.FinalDelay = time.Duration(delayMS) * time.Millisecond
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
