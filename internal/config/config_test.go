package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9901,
		"jwt_secret": "secret",
		"database": {"host": "localhost", "user": "taskradar", "db_name": "taskradar"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9901, cfg.Port)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 72, cfg.JWTTTLHours)
	require.Equal(t, "info", cfg.LogConfig.Level)
	require.Equal(t, "0 * * * *", cfg.Reminder.Cron)
	require.Equal(t, float64(1000), cfg.Reminder.RadiusMeters)
	require.Equal(t, "1.1.1.1:53", cfg.Reminder.ProbeAddr)
	require.Equal(t, 3000, cfg.Reminder.ProbeTimeout)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9901,
		"jwt_secret": "secret",
		"jwt_ttl_hours": 24,
		"database": {"dsn": "postgres://localhost/taskradar"},
		"reminder": {"cron": "*/30 * * * *", "radius_meters": 500}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 24, cfg.JWTTTLHours)
	require.Equal(t, "*/30 * * * *", cfg.Reminder.Cron)
	require.Equal(t, float64(500), cfg.Reminder.RadiusMeters)
}

func TestLoadRejectsMissingJWTSecret(t *testing.T) {
	path := writeConfig(t, `{"port": 9901, "database": {"host": "localhost"}}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingPort(t *testing.T) {
	path := writeConfig(t, `{"jwt_secret": "secret", "database": {"host": "localhost"}}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	path := writeConfig(t, `{"port": 9901, "jwt_secret": "secret"}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
