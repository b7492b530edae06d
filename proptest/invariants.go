package proptest

import (
	"folio/internal/catalog"

	"pgregory.net/rapid"
)

func verifyStructuralInvariants(t *rapid.T, cat catalog.Catalog) {
	list := cat.List()

	if cat.Count() != len(list) {
		t.Fatalf("Count()=%d but len(List())=%d", cat.Count(), len(list))
	}

	seen := make(map[string]bool, len(list))
	for i, it := range list {
		if it.ID == "" {
			t.Fatalf("item at %d has empty ID", i)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate ID %q in List()", it.ID)
		}
		seen[it.ID] = true

		if it.Protected && it.AccessSecret == "" {
			t.Fatalf("item %s is protected without a secret", it.ID)
		}
		if i > 0 && !orderedBefore(list[i-1], it) {
			t.Fatalf("List() out of display order at %d: %s before %s", i, list[i-1].ID, it.ID)
		}
	}
}

func orderedBefore(a, b catalog.Item) bool {
	if a.DisplayOrder != b.DisplayOrder {
		return a.DisplayOrder < b.DisplayOrder
	}
	return a.ID < b.ID
}
