package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ccgeom/ccgeom/config"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.True(t, cfg.Builder.DeriveEdges)
	require.True(t, cfg.Builder.DeriveHalfEdges)
	require.Zero(t, cfg.Store.MaxSurfaces)
	require.Equal(t, config.FormatText, cfg.Log.Format)
}

func TestParse_PartialDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte("builder:\n  derive_edges: false\nstore:\n  max_surfaces: 3\n"))
	require.NoError(t, err)
	require.False(t, cfg.Builder.DeriveEdges)
	require.True(t, cfg.Builder.DeriveHalfEdges)
	require.Equal(t, 3, cfg.Store.MaxSurfaces)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"negative limit", "store:\n  max_surfaces: -1\n"},
	}
	for _, tc := range tests {
		_, err := config.Parse([]byte(tc.doc))
		require.ErrorIs(t, err, config.ErrInvalidConfig, tc.name)
	}

	_, err := config.Parse([]byte("log: [unbalanced"))
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccgeom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\n"), 0o644))

	t.Setenv(config.EnvMaxSurfaces, "7")
	t.Setenv(config.EnvDeriveHalfEdges, "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, config.FormatJSON, cfg.Log.Format)
	require.Equal(t, 7, cfg.Store.MaxSurfaces)
	require.False(t, cfg.Builder.DeriveHalfEdges)

	t.Setenv(config.EnvMaxSurfaces, "many")
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestLogger_FormatAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = config.FormatJSON
	cfg.Log.Level = "warn"

	log := cfg.Logger(&buf)
	log.Info("dropped")
	log.Warn("kept", slog.Int("n", 1))

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), `"msg":"kept"`)
	require.Contains(t, buf.String(), `"n":1`)
}
