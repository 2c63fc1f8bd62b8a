package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimal = `
[database]
host = "localhost"
dbname = "traveldesk"
user = "app"

[file_service]
url = "http://files:8080"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Calendar.MonthCellCap)
	assert.Equal(t, 3, cfg.Calendar.LowAvailabilityBelow)
	assert.Equal(t, 10, cfg.Calendar.LimitedAvailabilityBelow)
	assert.Equal(t, "en-US", cfg.Calendar.Locale)
	assert.Equal(t, 120, cfg.Drafts.TTLMinutes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "@every 10m", cfg.Jobs.DraftPurgeCron)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("AUTH_JWT_SECRET", "jwt-from-env")

	cfg, err := Load(writeConfig(t, minimal+`
[auth]
enabled = true
`))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "jwt-from-env", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no database host", content: "[database]\ndbname = \"x\"\n[file_service]\nurl = \"http://f\"\n"},
		{name: "auth without secret", content: minimal + "[auth]\nenabled = true\n"},
		{name: "thresholds inverted", content: minimal + "[calendar]\nlow_availability_below = 20\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_JWT_SECRET", "")

			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
