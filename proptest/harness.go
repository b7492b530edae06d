package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"folio/internal/catalog"

	"pgregory.net/rapid"
)

const (
	minItems     = 0
	maxItems     = 20
	typicalMin   = 1
	typicalMax   = 10
	pinCapMax    = 25
	negativeCaps = -3
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenItem(opts ...ItemGenOpt) catalog.Item {
	return GenItem(h.T, opts...)
}

type CatalogHarness struct {
	Harness
	Catalog catalog.Catalog
	Path    string
}

func (h *CatalogHarness) MustAddItem(opts ...ItemGenOpt) catalog.Item {
	it := h.GenItem(opts...)
	if err := h.Catalog.Add(it); err != nil {
		h.T.Fatalf("failed to add item: %v", err)
	}
	stored, err := h.Catalog.Get(it.ID)
	if err != nil {
		h.T.Fatalf("item %s missing right after add: %v", it.ID, err)
	}
	return stored
}

func (h *CatalogHarness) AddItems(minCount, maxCount int) []catalog.Item {
	var added []catalog.Item
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numItems")
	for range n {
		added = append(added, h.MustAddItem())
	}
	return added
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		path := filepath.Join(iterDir, "catalog.yaml")
		cat, err := catalog.NewYAMLCatalog(path)
		if err != nil {
			rt.Fatalf("failed to create catalog: %v", err)
		}

		fn(&CatalogHarness{
			Harness: Harness{T: rt, Dir: iterDir},
			Catalog: cat,
			Path:    path,
		})
	})
}

// RunWithFile writes content to a fresh catalog path and hands over the
// unloaded catalog.
func RunWithFile(t *testing.T, content *rapid.Generator[string], fn func(rt *rapid.T, cat *catalog.YAMLCatalog, content string)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		path := filepath.Join(iterDir, "catalog.yaml")
		data := content.Draw(rt, "content")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			rt.Fatalf("failed to write file: %v", err)
		}

		cat, err := catalog.NewYAMLCatalog(path)
		if err != nil {
			rt.Fatalf("failed to create catalog: %v", err)
		}

		fn(rt, cat, data)
	})
}
