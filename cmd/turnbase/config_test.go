package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing default file yields defaults", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)

		cfg, err := loadConfig("")
		require.NoError(t, err)
		require.Equal(t, "tictactoe", cfg.Game)
		require.Equal(t, 2000, cfg.Iterations)
		require.False(t, cfg.Verbose)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("file values are applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "turnbase.yaml")
		require.NoError(t, os.WriteFile(path, []byte("game: nimsum\niterations: 500\nverbose: true\n"), 0o644))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "nimsum", cfg.Game)
		require.Equal(t, 500, cfg.Iterations)
		require.True(t, cfg.Verbose)
	})

	t.Run("rejects non-positive iterations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "turnbase.yaml")
		require.NoError(t, os.WriteFile(path, []byte("iterations: 0\n"), 0o644))

		_, err := loadConfig(path)
		require.Error(t, err)
	})
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
