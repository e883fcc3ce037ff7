package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asifkhanbk/price-calculator/config"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PRICECALC_POINTS_RATE", "")
	t.Setenv("PRICECALC_LOG_LEVEL", "")
	t.Setenv("PRICECALC_LOG_FORMAT", "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, int64(100), cfg.PointsRate)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points_rate: 200\nlog_level: warn\n"), 0o600))
	t.Setenv("PRICECALC_POINTS_RATE", "")
	t.Setenv("PRICECALC_LOG_LEVEL", "debug")
	t.Setenv("PRICECALC_LOG_FORMAT", "")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(200), cfg.PointsRate)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)

	t.Setenv("PRICECALC_POINTS_RATE", "50")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(50), cfg.PointsRate)
}

func TestLoadRejectsBadRate(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PRICECALC_POINTS_RATE", "abc")
	_, err := config.Load("")
	require.Error(t, err)

	t.Setenv("PRICECALC_POINTS_RATE", "0")
	_, err = config.Load("")
	require.EqualError(t, err, "points rate must be positive")
}

func TestLoadMissingFile(t *testing.T) {
	chdirTemp(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
