package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CatalogEnv overrides the default catalog location.
const CatalogEnv = "FOLIO_CATALOG"

// DefaultCatalogPath is $FOLIO_CATALOG when set, otherwise
// $XDG_DATA_HOME/folio/catalog.yaml with the usual ~/.local/share fallback.
func DefaultCatalogPath() string {
	if p := strings.TrimSpace(os.Getenv(CatalogEnv)); p != "" {
		if expanded, err := ExpandPath(p); err == nil {
			return expanded
		}
		return p
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "folio", "catalog.yaml")
}

func ExpandPath(path string) (string, error) {
	rest, tilde := strings.CutPrefix(path, "~")
	if tilde && (rest == "" || strings.HasPrefix(rest, "/")) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home + rest
	}
	return filepath.Abs(path)
}

func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}
