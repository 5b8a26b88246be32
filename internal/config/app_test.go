package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInit_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, RateSourceConfig, cfg.Rates.Source)
	require.Equal(t, []RateEntry{
		{Base: "USD", Quote: "KES", Value: 128.50},
		{Base: "KES", Quote: "USD", Value: 0.00778},
	}, cfg.Rates.Table)
	require.EqualValues(t, 10, cfg.DbServer.MaxConns)
	require.EqualValues(t, 10000, cfg.QuoteCache.MaxItems)
	require.Equal(t, 300, cfg.QuoteCache.TTLSeconds)
}

func TestInit_ReadsYAML(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9090"
logging:
  level: debug
rates:
  source: Postgres
  table:
    - base: usd
      quote: eur
      value: 0.92
db_server:
  host: localhost
  port: "5432"
  user: fx
  pass: secret
  name: fxcalc
quote_cache:
  max_items: 64
  ttl_seconds: 30
`)

	cfg, err := Init(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, RateSourcePostgres, cfg.Rates.Source)
	require.Equal(t, []RateEntry{{Base: "USD", Quote: "EUR", Value: 0.92}}, cfg.Rates.Table)
	require.Equal(t, "localhost", cfg.DbServer.Host)
	require.EqualValues(t, 64, cfg.QuoteCache.MaxItems)
	require.Equal(t, 30, cfg.QuoteCache.TTLSeconds)
	require.Equal(t,
		"user=fx password=secret host=localhost port=5432 dbname=fxcalc sslmode=disable",
		cfg.DbServer.GetConnectionStr(),
	)
}

func TestInit_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9090"
`)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("QUOTE_CACHE_TTL_SECONDS", "5")

	cfg, err := Init(path)
	require.NoError(t, err)

	require.Equal(t, "7070", cfg.HTTPServer.Port)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "db.internal", cfg.DbServer.Host)
	require.Equal(t, 5, cfg.QuoteCache.TTLSeconds)
}

func TestInit_UnknownRateSource(t *testing.T) {
	path := writeConfig(t, `
rates:
  source: redis
`)

	_, err := Init(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown rates source "redis"`)
}

func TestInit_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "http_server: [\n")

	_, err := Init(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading config file")
}
