// Package history persists one row per analysis run so dataset revisions can
// be compared over time.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/healthsignal/symclust/internal/analysis"
)

// Run is one stored analysis run.
type Run struct {
	ID           string
	Dataset      string
	Rows         int
	Users        int
	KMin         int
	KMax         int
	OutlierTotal int
	// Features is per-feature mean/std, JSON-encoded.
	Features  map[string]FeatureStat
	CreatedAt time.Time
}

// FeatureStat is the stored per-feature summary.
type FeatureStat struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Store keeps runs in a local sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id            TEXT PRIMARY KEY,
		dataset       TEXT NOT NULL,
		rows          INTEGER NOT NULL,
		users         INTEGER NOT NULL,
		k_min         INTEGER NOT NULL,
		k_max         INTEGER NOT NULL,
		outlier_total INTEGER NOT NULL,
		features      TEXT,
		created_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_dataset ON runs(dataset, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// FromReport condenses a report into its stored form.
func FromReport(rep *analysis.Report) Run {
	run := Run{
		ID:        rep.RunID,
		Dataset:   rep.Dataset,
		Rows:      rep.Rows,
		Users:     rep.Users,
		KMin:      rep.Recommendation.KMin,
		KMax:      rep.Recommendation.KMax,
		Features:  make(map[string]FeatureStat, len(rep.Features.Summary)),
		CreatedAt: rep.GeneratedAt,
	}
	for _, o := range rep.Recommendation.Outliers {
		run.OutlierTotal += o.Count
	}
	for _, f := range rep.Features.Summary {
		run.Features[f.Name] = FeatureStat{Mean: f.Mean, Std: f.Std}
	}
	return run
}

// Save inserts one run.
func (s *Store) Save(ctx context.Context, run Run) error {
	var featuresJSON *string
	if len(run.Features) > 0 {
		b, err := json.Marshal(run.Features)
		if err != nil {
			return fmt.Errorf("encode features: %w", err)
		}
		fs := string(b)
		featuresJSON = &fs
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, dataset, rows, users, k_min, k_max, outlier_total, features, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Dataset, run.Rows, run.Users, run.KMin, run.KMax,
		run.OutlierTotal, featuresJSON, run.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. dataset filters when
// non-empty.
func (s *Store) List(ctx context.Context, dataset string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, dataset, rows, users, k_min, k_max, outlier_total, features, created_at
	          FROM runs`
	args := []interface{}{}
	if dataset != "" {
		query += ` WHERE dataset = ?`
		args = append(args, dataset)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var featuresJSON sql.NullString
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Dataset, &run.Rows, &run.Users,
			&run.KMin, &run.KMax, &run.OutlierTotal, &featuresJSON, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if featuresJSON.Valid {
			json.Unmarshal([]byte(featuresJSON.String), &run.Features)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Stats holds database-level counts for the history command.
type Stats struct {
	Path      string
	SizeBytes int64
	TotalRuns int
	Datasets  int
}

// Stats returns counts over the stored runs.
func (s *Store) Stats(ctx context.Context, path string) (*Stats, error) {
	st := &Stats{Path: path}
	if info, err := os.Stat(path); err == nil {
		st.SizeBytes = info.Size()
	}
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&st.TotalRuns)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT dataset) FROM runs`).Scan(&st.Datasets)
	return st, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
