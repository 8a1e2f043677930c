package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"texatlas/atlas"
	"texatlas/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadAndResolve(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"input_dir": "assets", "format": "WEBP", "workers": 3}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	cfg.Resolve(config.Flags{})
	require.Equal(t, "assets", cfg.InputDir)
	require.Equal(t, "assets", cfg.OutputDir) // defaults to the input dir
	require.Equal(t, "webp", cfg.Format)      // lowercased
	require.Equal(t, atlas.DefaultMaxSize, cfg.MaxSize)
	require.Equal(t, 3, cfg.Workers)
}

func TestFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"input_dir": "assets", "format": "webp", "workers": 3, "max_size": 512}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	cfg.Resolve(config.Flags{
		OutputDir: "out",
		Format:    "png",
		MaxSize:   1024,
		Workers:   7,
		Verbose:   true,
	})
	require.Equal(t, "assets", cfg.InputDir)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, "png", cfg.Format)
	require.Equal(t, 1024, cfg.MaxSize)
	require.Equal(t, 7, cfg.Workers)
	require.True(t, cfg.Verbose)
}

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	cfg.Resolve(config.Flags{})
	require.Equal(t, ".", cfg.InputDir)
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, "png", cfg.Format)
	require.Equal(t, atlas.DefaultMaxSize, cfg.MaxSize)
	require.Greater(t, cfg.Workers, 0)
	require.False(t, cfg.Verbose)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.ErrorContains(t, err, "read")
}

func TestLoadBadJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"input_dir": `)
	_, err := config.Load(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "parse")
}
