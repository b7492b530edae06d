package proptest

import (
	"folio/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertItemsEqual(t *rapid.T, expected, actual catalog.Item) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateApproxTime(0),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("item mismatch (-want +got):\n%s", diff)
	}
}

func assertIDs(t *rapid.T, expected []string, actual []catalog.Item) {
	t.Helper()
	if diff := cmp.Diff(expected, ids(actual), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

// assertSubsequence checks that sub keeps the relative order of items in
// super.
func assertSubsequence(t *rapid.T, sub, super []catalog.Item) {
	t.Helper()
	j := 0
	for _, it := range sub {
		for j < len(super) && super[j].ID != it.ID {
			j++
		}
		if j == len(super) {
			t.Fatalf("%s is not a subsequence of %v", it.ID, ids(super))
		}
		j++
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
