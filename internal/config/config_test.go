package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[db]
user = "perktrack"
database = "perktrack"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, ":8080", cfg.Web.Addr())
	assert.Equal(t, 120, cfg.Web.LedgerRateLimit)
	assert.Equal(t, "eager", cfg.Engine.AutoRedeemMode)
	assert.Equal(t, 5*time.Minute, cfg.Engine.CatalogCacheTTL.Duration)
	assert.False(t, cfg.Spaces.Configured())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[db]
host = "db.internal"
port = 6432
user = "app"
database = "perks"
slow_query = "1s"

[web]
host = "0.0.0.0"
port = 9000
allow_origins = ["https://app.example.com"]

[engine]
auto_redeem_mode = "overlay"
catalog_cache_ttl = "30s"

[spaces]
key = "k"
secret = "s"
bucket = "reports"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, time.Second, cfg.DB.SlowQuery.Duration)
	assert.Equal(t, "0.0.0.0:9000", cfg.Web.Addr())
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Web.AllowOrigins)
	assert.Equal(t, "overlay", cfg.Engine.AutoRedeemMode)
	assert.Equal(t, 30*time.Second, cfg.Engine.CatalogCacheTTL.Duration)
	assert.True(t, cfg.Spaces.Configured())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing db user", body: "[db]\ndatabase = \"x\"\n"},
		{name: "bad auto redeem mode", body: "[db]\nuser = \"u\"\ndatabase = \"x\"\n[engine]\nauto_redeem_mode = \"lazy\"\n"},
		{name: "bad duration", body: "[db]\nuser = \"u\"\ndatabase = \"x\"\nslow_query = \"soon\"\n"},
		{name: "unknown key", body: "[db]\nuser = \"u\"\ndatabase = \"x\"\ncolour = \"blue\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
