package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"folio/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogPath(t *testing.T) {
	t.Setenv(config.CatalogEnv, "")

	t.Run("FOLIO_CATALOG wins over XDG_DATA_HOME", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data")
		t.Setenv(config.CatalogEnv, "/srv/portfolio/catalog.yaml")

		assert.Equal(t, "/srv/portfolio/catalog.yaml", config.DefaultCatalogPath())
	})

	t.Run("FOLIO_CATALOG expands a leading tilde", func(t *testing.T) {
		t.Setenv("HOME", "/home/test")
		t.Setenv(config.CatalogEnv, "~/folio.yaml")

		assert.Equal(t, "/home/test/folio.yaml", config.DefaultCatalogPath())
	})

	t.Run("respects XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data")

		got := config.DefaultCatalogPath()

		assert.Equal(t, "/custom/data/folio/catalog.yaml", got)
	})

	t.Run("falls back to ~/.local/share when XDG_DATA_HOME is empty", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")

		got := config.DefaultCatalogPath()

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		expected := filepath.Join(home, ".local", "share", "folio", "catalog.yaml")
		assert.Equal(t, expected, got)
	})

	t.Run("falls back to ~/.local/share when XDG_DATA_HOME is not set", func(t *testing.T) {
		os.Unsetenv("XDG_DATA_HOME")

		got := config.DefaultCatalogPath()

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		expected := filepath.Join(home, ".local", "share", "folio", "catalog.yaml")
		assert.Equal(t, expected, got)
	})

	t.Run("handles XDG_DATA_HOME with trailing slash", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data/")

		got := config.DefaultCatalogPath()

		assert.Equal(t, "/custom/data/folio/catalog.yaml", got)
	})

	t.Run("handles relative XDG_DATA_HOME path", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "relative/path")

		got := config.DefaultCatalogPath()

		assert.Equal(t, "relative/path/folio/catalog.yaml", got)
	})

	t.Run("produces valid path even when HOME is unset", func(t *testing.T) {
		os.Unsetenv("HOME")
		os.Unsetenv("XDG_DATA_HOME")
		t.Cleanup(func() {
			if h, err := os.UserHomeDir(); err == nil {
				t.Setenv("HOME", h)
			}
		})

		got := config.DefaultCatalogPath()

		assert.True(t, filepath.IsAbs(got) || got == ".local/share/folio/catalog.yaml",
			"path should be absolute or have documented fallback, got: %s", got)
	})
}

func TestShortenPath(t *testing.T) {
	t.Run("replaces home prefix with tilde", func(t *testing.T) {
		t.Setenv("HOME", "/home/test")

		assert.Equal(t, "~/catalogs/main.yaml", config.ShortenPath("/home/test/catalogs/main.yaml"))
	})

	t.Run("home itself becomes tilde", func(t *testing.T) {
		t.Setenv("HOME", "/home/test")

		assert.Equal(t, "~", config.ShortenPath("/home/test"))
	})

	t.Run("sibling directory sharing the prefix is untouched", func(t *testing.T) {
		t.Setenv("HOME", "/home/test")

		assert.Equal(t, "/home/tester/file", config.ShortenPath("/home/tester/file"))
	})
}

func TestExpandPath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		home     string
		expected func(home, cwd string) string
	}{
		{
			name:     "tilde expansion with subpath",
			input:    "~/projects",
			home:     "/home/test",
			expected: func(home, _ string) string { return filepath.Join(home, "projects") },
		},
		{
			name:     "tilde only",
			input:    "~",
			home:     "/home/test",
			expected: func(home, _ string) string { return home },
		},
		{
			name:     "dot expands to current dir",
			input:    ".",
			expected: func(_, cwd string) string { return cwd },
		},
		{
			name:     "relative path becomes absolute",
			input:    "subdir/project",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "subdir/project") },
		},
		{
			name:     "absolute path unchanged",
			input:    "/absolute/path",
			expected: func(_, _ string) string { return "/absolute/path" },
		},
		{
			name:     "tilde with spaces in path",
			input:    "~/my projects/test",
			home:     "/home/test",
			expected: func(home, _ string) string { return filepath.Join(home, "my projects/test") },
		},
		{
			name:     "tilde prefix of a name not expanded",
			input:    "~other/file",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "~other/file") },
		},
		{
			name:     "tilde in middle not expanded",
			input:    "foo/~/bar",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "foo/~/bar") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.home != "" {
				t.Setenv("HOME", tt.home)
			}

			home, _ := os.UserHomeDir()

			result, err := config.ExpandPath(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected(home, cwd), result)
		})
	}
}
