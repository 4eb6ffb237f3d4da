package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		for _, key := range []string{"MAZE_WIDTH", "MAZE_HEIGHT", "MAZE_SEED", "OUTPUT_PATH", "LOG_DEBUG"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		c := initConfig()
		assert.Equal(t, 301, c.MazeWidth)
		assert.Equal(t, 301, c.MazeHeight)
		assert.Nil(t, c.MazeSeed)
		assert.Equal(t, "output.png", c.OutputPath)
		assert.False(t, c.LogDebug)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("MAZE_WIDTH", "11")
		t.Setenv("MAZE_HEIGHT", "21")
		t.Setenv("MAZE_SEED", "42")
		t.Setenv("OUTPUT_PATH", "maze.bmp")
		t.Setenv("LOG_DEBUG", "true")

		c := initConfig()
		assert.Equal(t, 11, c.MazeWidth)
		assert.Equal(t, 21, c.MazeHeight)
		require.NotNil(t, c.MazeSeed)
		assert.Equal(t, int64(42), *c.MazeSeed)
		assert.Equal(t, "maze.bmp", c.OutputPath)
		assert.True(t, c.LogDebug)
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("CFG_INT", "x")
	assert.Equal(t, 7, getEnvAsIntWithDefault("CFG_INT", 7))
	assert.Nil(t, getEnvAsOptionalInt64("CFG_INT"))
	assert.False(t, getEnvAsBoolWithDefault("CFG_INT", false))

	t.Setenv("CFG_INT", "-3")
	assert.Equal(t, -3, getEnvAsIntWithDefault("CFG_INT", 7))
	assert.Equal(t, "fallback", getEnvWithDefault("CFG_UNSET_KEY", "fallback"))
}
