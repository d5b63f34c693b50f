package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "studysmart.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	toml := `
[database]
path = "/tmp/cards.db"

[log]
level = "DEBUG"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cards.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)

	t.Setenv("STUDYSMART_DATABASE_PATH", "/var/lib/studysmart.db")
	cfg, err = Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/studysmart.db", cfg.Database.Path)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STUDYSMART_DATABASE_DRIVER", "mysql")
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("STUDYSMART_DATABASE_DRIVER", "postgres")
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("STUDYSMART_LOG_LEVEL", "loud")
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[database"), 0o600))
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestDialector(t *testing.T) {
	d, err := Dialector(DatabaseConfig{Driver: "sqlite", Path: "x.db"})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Dialector{}, d)

	d, err = Dialector(DatabaseConfig{Driver: "postgres", URL: "postgres://localhost/studysmart"})
	require.NoError(t, err)
	assert.IsType(t, &postgres.Dialector{}, d)

	_, err = Dialector(DatabaseConfig{Driver: "bolt"})
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("STUDYSMART_ENV", "production")
	env := LoadEnvironment()
	assert.False(t, env.IsDevelopment)
	assert.Equal(t, "production", env.Name)

	t.Setenv("STUDYSMART_ENV", "staging")
	env = LoadEnvironment()
	assert.True(t, env.IsDevelopment)
	assert.Equal(t, "staging", env.Name)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []Environment{{IsDevelopment: true}, {IsDevelopment: false}} {
		logger, err := NewLogger(env, LogConfig{Level: "warn"})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(-1))
		assert.True(t, logger.Core().Enabled(1))
	}
}
