package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMissingTestPath(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope"), false, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test path does not exist")
}

func TestResolveTestPathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.st")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;\n"), 0o644))

	_, err := Resolve(path, false, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestEditorPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.toml"),
		[]byte("[editor]\ncommand = \"nano\"\n"), 0o644))

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("EDITOR", "vim")
		cfg, err := Resolve(dir, false, "code -w", false)
		require.NoError(t, err)
		assert.Equal(t, "code -w", cfg.Editor)
	})

	t.Run("environment beats toml", func(t *testing.T) {
		t.Setenv("EDITOR", "vim")
		cfg, err := Resolve(dir, false, "", false)
		require.NoError(t, err)
		assert.Equal(t, "vim", cfg.Editor)
	})

	t.Run("toml is the fallback", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		cfg, err := Resolve(dir, false, "", false)
		require.NoError(t, err)
		assert.Equal(t, "nano", cfg.Editor)
	})
}

func TestColorResolution(t *testing.T) {
	dir := t.TempDir()

	t.Run("follows terminal by default", func(t *testing.T) {
		cfg, err := Resolve(dir, false, "", true)
		require.NoError(t, err)
		assert.True(t, cfg.Color)

		cfg, err = Resolve(dir, false, "", false)
		require.NoError(t, err)
		assert.False(t, cfg.Color)
	})

	t.Run("no-color always wins", func(t *testing.T) {
		cfg, err := Resolve(dir, true, "", true)
		require.NoError(t, err)
		assert.False(t, cfg.Color)
	})
}

func TestColorPinnedByToml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.toml"),
		[]byte("[output]\ncolor = \"on\"\n"), 0o644))

	cfg, err := Resolve(dir, false, "", false)
	require.NoError(t, err)
	assert.True(t, cfg.Color)

	// The flag still overrides a pinned "on".
	cfg, err = Resolve(dir, true, "", false)
	require.NoError(t, err)
	assert.False(t, cfg.Color)
}

func TestSiftTomlDiscoveredUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "tests", "syntax")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sift.toml"),
		[]byte("[editor]\ncommand = \"hx\"\n"), 0o644))

	t.Setenv("EDITOR", "")
	cfg, err := Resolve(nested, false, "", false)
	require.NoError(t, err)
	assert.Equal(t, "hx", cfg.Editor)
}

func TestBadTomlValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.toml"),
		[]byte("[output]\ncolor = \"sometimes\"\n"), 0o644))

	_, err := Resolve(dir, false, "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown [output].color")
}
