package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "NFLX"}, cfg.Watchlist.Symbols)
	assert.Equal(t, model.HorizonLong, cfg.Horizon())
	assert.Equal(t, "0 0 8 * * 1", cfg.Schedule.ScanCron)
	assert.Equal(t, "data/stockscout.db", cfg.Database.SQLitePath)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
watchlist:
  symbols: [ENI.MI, ISP.MI]
  horizon: short
schedule:
  scan_cron: "0 30 7 * * 1-5"
database:
  sqlite_path: /tmp/scout-test.db
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"ENI.MI", "ISP.MI"}, cfg.Watchlist.Symbols)
	assert.Equal(t, model.HorizonShort, cfg.Horizon())
	assert.Equal(t, "0 30 7 * * 1-5", cfg.Schedule.ScanCron)
	assert.Equal(t, "/tmp/scout-test.db", cfg.Database.SQLitePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WATCHLIST", " aapl, msft ,")
	t.Setenv("HORIZON", "short")
	t.Setenv("SCAN_CRON", "0 0 9 * * *")
	t.Setenv("SQLITE_PATH", "/tmp/env.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Watchlist.Symbols)
	assert.Equal(t, model.HorizonShort, cfg.Horizon())
	assert.Equal(t, "0 0 9 * * *", cfg.Schedule.ScanCron)
	assert.Equal(t, "/tmp/env.db", cfg.Database.SQLitePath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watchlist: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Watchlist.Symbols = []string{"AAPL"}
	cfg.Schedule.ScanCron = "0 0 8 * * 1"
	assert.NoError(t, cfg.Validate())

	cfg.Watchlist.Symbols = nil
	assert.Error(t, cfg.Validate())

	cfg.Watchlist.Symbols = []string{" "}
	assert.Error(t, cfg.Validate())
}
