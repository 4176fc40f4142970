package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"StockScout/internal/model"
)

// SQLiteRecorder persists scoring runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS score_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			company     TEXT,
			sector      TEXT,
			industry    TEXT,
			horizon     TEXT,
			final_score REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON score_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ticker ON score_runs(ticker)`,

		`CREATE TABLE IF NOT EXISTS score_breakdown (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL REFERENCES score_runs(id),
			indicator TEXT NOT NULL,
			score     REAL,
			weight    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_breakdown_run ON score_breakdown(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScore writes one run row plus a breakdown row per profile indicator.
func (r *SQLiteRecorder) RecordScore(res *model.ScoreResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	result, err := tx.Exec(`INSERT INTO score_runs
		(timestamp, ticker, company, sector, industry, horizon, final_score)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Ticker, res.Company, res.Sector, res.Industry,
		string(res.Horizon), res.FinalScore,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("run id: %w", err)
	}

	for _, wi := range res.Profile {
		score := res.Breakdown[wi.Indicator].Value
		if _, err := tx.Exec(`INSERT INTO score_breakdown
			(run_id, indicator, score, weight) VALUES (?,?,?,?)`,
			runID, wi.Indicator, score, wi.Weight,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert breakdown: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
