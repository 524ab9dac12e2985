package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(lookupFrom(map[string]string{
		"POSSIZE_QUOTE_CURRENCY":  "USDC",
		"POSSIZE_MONEY_PLACES":    "3",
		"POSSIZE_EXPORT_FORMAT":   "pipe",
		"POSSIZE_LOG_LEVEL":       "debug",
		"POSSIZE_ACCOUNT_BALANCE": "1500.5",
		"POSSIZE_MAX_LEVERAGE":    "20",
		"UNRELATED":               "x",
	}))
	require.NoError(t, err)

	assert.Equal(t, "USDC", cfg.Display.QuoteCurrency)
	assert.Equal(t, 3, cfg.Display.MoneyPlaces)
	assert.Equal(t, "pipe", cfg.Export.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 1500.5, cfg.Policy.AccountBalance)
	assert.Equal(t, 20.0, cfg.Policy.MaxLeverage)
	assert.Equal(t, 8, cfg.Display.PricePlaces)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadNumber(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(lookupFrom(map[string]string{"POSSIZE_PRICE_PLACES": "eight"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSSIZE_PRICE_PLACES")

	err = cfg.ApplyEnv(lookupFrom(map[string]string{"POSSIZE_MIN_RR": "lots"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSSIZE_MIN_RR")
}

func TestLoadEnv_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadEnv_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("POSSIZE_TEST_LOADENV=from-file\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("POSSIZE_TEST_LOADENV") })

	require.NoError(t, LoadEnv(path))
	v, ok := os.LookupEnv("POSSIZE_TEST_LOADENV")
	assert.True(t, ok)
	assert.Equal(t, "from-file", v)
}
