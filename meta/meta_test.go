package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tictacpro/geometry"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 4, cfg.RunLength)

	b, err := cfg.Board()
	require.NoError(t, err)
	require.Equal(t, 25, b.Cells())
}

func TestLoad(t *testing.T) {
	t.Run("overlays the defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "board_side: 3\nmax_levels: 4\nopponent_delay: 150ms\nseed: 42\n"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.BoardSide)
		require.Equal(t, 3, cfg.RunLength, "run length follows the side")
		require.Equal(t, 4, cfg.MaxLevels)
		require.Equal(t, 150*time.Millisecond, cfg.OpponentDelay)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, 1000, cfg.BasePoints)
	})

	t.Run("explicit run length", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "board_side: 6\nrun_length: 3\n"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.RunLength)
	})

	t.Run("invalid geometry", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board_side: 4\nrun_length: 5\n"))
		require.ErrorIs(t, err, geometry.ErrConfiguration)
	})

	t.Run("invalid limits", func(t *testing.T) {
		_, err := Load(writeConfig(t, "max_levels: 0\n"))
		require.ErrorIs(t, err, geometry.ErrConfiguration)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board_side: [\n"))
		require.Error(t, err)
	})
}

func TestSessionSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 10
	require.Equal(t, uint64(10), cfg.SessionSeed(0))
	require.Equal(t, uint64(13), cfg.SessionSeed(3))
}
