package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with game and redis sections
		path := writeConfig(t, `
log-level: debug
ui: http
http-port: "8081"
game:
  difficulty: hard
  computer-delay: 1s
  human-mark: O
redis:
  enabled: true
  host: cache
  port: "6380"
  channel: games
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every value comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, UIHTTP, conf.UI)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "hard", conf.Game.Difficulty)
		assert.Equal(t, time.Second, conf.Game.ComputerDelay)
		assert.Equal(t, "O", conf.Game.HumanMark)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "games", conf.Redis.Channel)
	})

	t.Run("Fills defaults for missing values", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: info\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, UITerminal, conf.UI)
		assert.Equal(t, "easy", conf.Game.Difficulty)
		assert.Equal(t, 500*time.Millisecond, conf.Game.ComputerDelay)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file asking for easy and an env var asking for medium
		path := writeConfig(t, "game:\n  difficulty: easy\n")
		t.Setenv("GAME_DIFFICULTY", "medium")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the env var wins
		require.NoError(t, err)
		assert.Equal(t, "medium", conf.Game.Difficulty)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		assert.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yml")) })
	})
}

func TestLoadEnv(t *testing.T) {
	// Given: only environment variables
	t.Setenv("UI", "http")
	t.Setenv("GAME_COMPUTER_DELAY", "0s")

	// When: the config is read from the environment
	conf, err := LoadEnv()

	// Then: env values and defaults are combined
	require.NoError(t, err)
	assert.Equal(t, UIHTTP, conf.UI)
	assert.Equal(t, time.Duration(0), conf.Game.ComputerDelay)
	assert.Equal(t, "info", conf.LogLevel)
}
