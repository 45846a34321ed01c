package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kmills/causalpath/internal/experiment"
)

// DirName is the per-project data directory holding the run database.
const DirName = ".causalpath"

// RunStore persists experiment runs in a SQLite database under the project
// root. Safe for concurrent use.
type RunStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	dbPath string
}

// NewRunStore opens (creating if needed) the run database under
// projectRoot/.causalpath/runs.db.
func NewRunStore(projectRoot string) (*RunStore, error) {
	dir := filepath.Join(projectRoot, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s directory: %w", DirName, err)
	}

	dbPath := filepath.Join(dir, "runs.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &RunStore{db: db, dbPath: dbPath}, nil
}

// SaveRun persists a run. Saving the same run ID twice replaces the record.
func (s *RunStore) SaveRun(ctx context.Context, run *experiment.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	// Stored as decimal text: SQLite INTEGER is signed 64-bit and would
	// wrap seeds at or above 1<<63.
	var seed any
	if run.Seed != nil {
		seed = strconv.FormatUint(*run.Seed, 10)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs
			(id, created_at, num_rows, seed, analytic_total, fitted_total, fitted_direct, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format("2006-01-02T15:04:05.999999999Z07:00"),
		run.NumRows,
		seed,
		run.AnalyticTotal,
		run.TotalRecovery.Estimate,
		run.DirectRecovery.Estimate,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun loads a run by ID.
func (s *RunStore) GetRun(ctx context.Context, id string) (*experiment.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM runs WHERE id = ?", id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", id, err)
	}

	var run experiment.Run
	if err := json.Unmarshal([]byte(payload), &run); err != nil {
		return nil, fmt.Errorf("unmarshal run %s: %w", id, err)
	}
	return &run, nil
}

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	ID            string  `json:"id"`
	CreatedAt     string  `json:"created_at"`
	NumRows       int     `json:"num_rows"`
	Seed          *uint64 `json:"seed,omitempty"`
	AnalyticTotal float64 `json:"analytic_total"`
	FittedTotal   float64 `json:"fitted_total"`
	FittedDirect  float64 `json:"fitted_direct"`
}

// ListRuns returns run summaries newest first, at most limit (0 = all).
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, created_at, num_rows, seed, analytic_total, fitted_total, fitted_direct
		FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var rs RunSummary
		var seed sql.NullString
		if err := rows.Scan(&rs.ID, &rs.CreatedAt, &rs.NumRows, &seed,
			&rs.AnalyticTotal, &rs.FittedTotal, &rs.FittedDirect); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if seed.Valid {
			v, err := strconv.ParseUint(seed.String, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse seed for run %s: %w", rs.ID, err)
			}
			rs.Seed = &v
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *RunStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
