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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8083
read_timeout = 20

[database]
host = "db.local"
port = 5432
user = "rental"
password = "secret"
dbname = "rental"
sslmode = "require"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "rental-service"
path = "/metrics"

[jobs]
complete_appointments_schedule = "*/5 * * * *"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8083, cfg.Server.HTTPPort)
		assert.Equal(t, 20, cfg.Server.ReadTimeout)
		assert.Equal(t, "db.local", cfg.Database.Host)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "debug", cfg.Logs.Level)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "*/5 * * * *", cfg.Jobs.CompleteAppointmentsSchedule)
	})

	t.Run("defaults are applied", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8083

[database]
host = "localhost"
port = 5432
user = "rental"
dbname = "rental"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 15, cfg.Server.WriteTimeout)
		assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.Equal(t, "*/10 * * * *", cfg.Jobs.CompleteAppointmentsSchedule)
		assert.Equal(t, "0 * * * *", cfg.Jobs.DeactivatePromotionsSchedule)
	})

	t.Run("missing database host", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 8083

[database]
port = 5432
user = "rental"
dbname = "rental"
`)

		_, err := Load(path)

		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

		assert.Error(t, err)
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "rental",
		Password: "secret",
		DBName:   "rental",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=rental password=secret dbname=rental sslmode=disable", d.DSN())
}
