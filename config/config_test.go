package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")

	v, err := New(path)
	require.NoError(t, err)

	var c Config
	require.NoError(t, Decode(v, &c))
	assert.Equal(t, 99, c.Game.Actors)
	assert.Equal(t, 10, c.Game.Rounds)
	assert.Equal(t, "memory", c.Storage.Driver)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ":8080", c.Server.Port)
}

func TestFileValues(t *testing.T) {
	path := writeConfig(t, `
game:
  actors: 12
  rounds: 4
  seed: 42
redis:
  addr: "cache:6379"
  ttl: 60
storage:
  driver: redis
`)
	v, err := New(path)
	require.NoError(t, err)

	var c Config
	require.NoError(t, Decode(v, &c))
	assert.Equal(t, 12, c.Game.Actors)
	assert.Equal(t, 4, c.Game.Rounds)
	assert.Equal(t, int64(42), c.Game.Seed)
	assert.Equal(t, "cache:6379", c.Redis.Addr)
	assert.Equal(t, 60, c.Redis.TTL)
	assert.Equal(t, "redis", c.Storage.Driver)
}

func TestEnvOverride(t *testing.T) {
	path := writeConfig(t, "game:\n  actors: 12\n")
	t.Setenv("STARGAME_GAME_ACTORS", "40")

	v, err := New(path)
	require.NoError(t, err)

	var c Config
	require.NoError(t, Decode(v, &c))
	assert.Equal(t, 40, c.Game.Actors)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	var c Config
	c.Storage.Driver = "memory"
	assert.NoError(t, c.Validate())

	c.Game.Actors = -1
	assert.Error(t, c.Validate())

	c.Game.Actors = 5
	c.Storage.Driver = "mongo"
	assert.Error(t, c.Validate())

	c.Storage.Driver = "postgres"
	assert.Error(t, c.Validate(), "postgres without a dsn")

	c.Database.DSN = "postgres://localhost/x"
	assert.NoError(t, c.Validate())
}
