package database

import (
	"testing"
	"time"

	"github.com/deppfellow/bizdir/internal/config"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:     "::1",
			Port:     5432,
			User:     "bizdir",
			Password: "pa:ss@word",
			Name:     "directory",
			SSLMode:  "disable",
		},
	}

	assert.Equal(t,
		"postgres://bizdir:pa%3Ass%40word@[::1]:5432/directory?sslmode=disable",
		DSN(cfg),
	)
}

func TestEmbeddedMigrations(t *testing.T) {
	m := &tern.Migrator{}

	require.NoError(t, loadMigrations(m))
	require.Len(t, m.Migrations, 1)
	assert.Contains(t, m.Migrations[0].UpSQL, "CREATE TABLE businesses")
	assert.Contains(t, m.Migrations[0].DownSQL, "DROP TABLE")
}

func TestNewQueryTracer(t *testing.T) {
	logger := zerolog.Nop()

	cfg := &config.Config{Primary: config.Primary{Env: "production"}}
	assert.Nil(t, newQueryTracer(cfg, &logger, nil))

	cfg.Observability = &config.ObservabilityConfig{}
	cfg.Observability.Logging.SlowQueryThreshold = 200 * time.Millisecond
	assert.IsType(t, &slowQueryTracer{}, newQueryTracer(cfg, &logger, nil))

	cfg.Primary.Env = "local"
	assert.IsType(t, multiTracer{}, newQueryTracer(cfg, &logger, nil))
}
