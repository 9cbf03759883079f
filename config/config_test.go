package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "converter.yaml")
	require.Nil(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONVERTER_LISTEN", "")
	t.Setenv("CONVERTER_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Nil(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)

	from, to := cfg.Pair()
	assert.Equal(t, domain.Currency("USD"), from)
	assert.Equal(t, domain.Currency("VND"), to)

	catalog, err := cfg.Catalog()
	require.Nil(t, err)
	assert.Equal(t, rates.Default().Labels(), catalog.Labels())
	assert.True(t, cfg.ZeroDecimalSet().Contains("KRW"))
}

func TestLoad_File(t *testing.T) {
	t.Setenv("CONVERTER_LISTEN", "")
	t.Setenv("CONVERTER_LOG_LEVEL", "")

	path := writeConfig(t, `
listen: ":9090"
log_level: DEBUG
default_from: EUR
default_to: CHF
zero_decimal: [huf]
currencies:
  - label: "Euro - Euro (EUR)"
    rate: 1
  - label: "Switzerland - Franc (CHF)"
    rate: 0.95
  - label: "Hungary - Forint (HUF)"
    rate: 390
`)
	cfg, err := Load(path)
	require.Nil(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)

	from, to := cfg.Pair()
	assert.Equal(t, domain.Currency("EUR"), from)
	assert.Equal(t, domain.Currency("CHF"), to)

	catalog, err := cfg.Catalog()
	require.Nil(t, err)
	assert.Equal(t, []domain.Currency{"EUR", "CHF", "HUF"}, catalog.Codes())
	assert.Equal(t, domain.Rate(0.95), catalog.Rates().Rate("CHF"))

	zero := cfg.ZeroDecimalSet()
	assert.True(t, zero.Contains("HUF"))
	assert.False(t, zero.Contains("VND"))
}

func TestLoad_EmptyZeroDecimalList(t *testing.T) {
	cfg, err := Load(writeConfig(t, "zero_decimal: []\n"))
	require.Nil(t, err)

	assert.Equal(t, 0, cfg.ZeroDecimalSet().Len())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONVERTER_LISTEN", "127.0.0.1:7000")
	t.Setenv("CONVERTER_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "listen: \":9090\"\n"))
	require.Nil(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Listen)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONVERTER_LOG_LEVEL", "")

	_, err := Load(writeConfig(t, "currencies:\n  - label: \"Broken (BRK)\"\n    rate: 0\n"))
	assert.True(t, errors.Is(err, rates.ErrInvalidRate), "got %v", err)

	_, err = Load(writeConfig(t, "listen: [not, a, string"))
	assert.NotNil(t, err)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	assert.NotNil(t, err)
}

func TestConfig_LevelOption(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := Config{LogLevel: tt.level}
			logger := level.NewFilter(log.NewLogfmtLogger(&buf), cfg.LevelOption())

			_ = level.Debug(logger).Log("msg", "d")
			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "msg=d"))

			_ = level.Info(logger).Log("msg", "i")
			assert.Equal(t, tt.wantInfo, strings.Contains(buf.String(), "msg=i"))
		})
	}
}
