package recorder

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
)

func sampleResult() *model.ScoreResult {
	profile := model.WeightProfile{
		{Indicator: "ROE", Weight: 0.6},
		{Indicator: "Beta", Weight: 0.4},
	}
	return &model.ScoreResult{
		Ticker:     "ACME",
		Company:    "Acme Technologies Inc.",
		Sector:     "Technology",
		Industry:   "Software",
		Horizon:    model.HorizonLong,
		FinalScore: 82.0,
		Breakdown: map[string]model.IndicatorScore{
			"ROE":  {Name: "ROE", Value: 9.0},
			"Beta": {Name: "Beta", Value: 7.0},
		},
		Profile: profile,
	}
}

func TestSQLiteRecorder_RecordScore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	rec, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)

	require.NoError(t, rec.RecordScore(sampleResult()))
	require.NoError(t, rec.RecordScore(sampleResult()))
	require.NoError(t, rec.Close())

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var runs int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM score_runs`).Scan(&runs))
	assert.Equal(t, 2, runs)

	var ticker, horizon string
	var score float64
	require.NoError(t, db.QueryRow(
		`SELECT ticker, horizon, final_score FROM score_runs ORDER BY id LIMIT 1`,
	).Scan(&ticker, &horizon, &score))
	assert.Equal(t, "ACME", ticker)
	assert.Equal(t, "long", horizon)
	assert.Equal(t, 82.0, score)

	// One breakdown row per profile indicator per run.
	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM score_breakdown`).Scan(&rows))
	assert.Equal(t, 4, rows)

	var weight float64
	require.NoError(t, db.QueryRow(
		`SELECT weight FROM score_breakdown WHERE indicator = 'ROE' LIMIT 1`,
	).Scan(&weight))
	assert.Equal(t, 0.6, weight)
}

func TestSQLiteRecorder_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	rec, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)
	require.NoError(t, rec.RecordScore(sampleResult()))
	require.NoError(t, rec.Close())

	// Migrations are idempotent and existing rows survive.
	rec2, err := NewSQLiteRecorder(dbPath)
	require.NoError(t, err)
	require.NoError(t, rec2.RecordScore(sampleResult()))
	defer rec2.Close()

	var runs int
	require.NoError(t, rec2.db.QueryRow(`SELECT COUNT(*) FROM score_runs`).Scan(&runs))
	assert.Equal(t, 2, runs)
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	assert.NoError(t, rec.RecordScore(sampleResult()))
	assert.NoError(t, rec.Close())
}
