package gallery_test

import (
	"testing"

	"folio/internal/catalog"
	"folio/internal/gallery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id string, tech []string, roles []string, pinned bool) catalog.Item {
	return catalog.Item{
		ID:           id,
		Title:        "Project " + id,
		Technologies: tech,
		Roles:        roles,
		Pinned:       pinned,
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// scenario returns the four-item collection used across the engine tests:
// A and D pinned, C protected with secret "abc".
func scenario() []catalog.Item {
	c := item("C", []string{"React", "Vue"}, []string{"Designer"}, false)
	c.Protected = true
	c.AccessSecret = "abc"
	return []catalog.Item{
		item("A", []string{"React"}, []string{"Dev"}, true),
		item("B", []string{"Vue"}, []string{"Dev"}, false),
		c,
		item("D", nil, []string{"Dev"}, true),
	}
}

func TestBuildFacetIndex(t *testing.T) {
	t.Run("counts each tag once per item", func(t *testing.T) {
		items := []catalog.Item{
			item("1", []string{"Go", "Go", "React"}, []string{"Dev", "Dev"}, false),
			item("2", []string{"Go"}, []string{"Designer"}, false),
		}

		idx := gallery.BuildFacetIndex(items)

		assert.Equal(t, map[string]int{"Go": 2, "React": 1}, idx.Technologies)
		assert.Equal(t, map[string]int{"Dev": 1, "Designer": 1}, idx.Roles)
	})

	t.Run("empty input yields empty maps", func(t *testing.T) {
		idx := gallery.BuildFacetIndex(nil)

		require.NotNil(t, idx.Technologies)
		require.NotNil(t, idx.Roles)
		assert.Empty(t, idx.Technologies)
		assert.Empty(t, idx.Roles)
	})

	t.Run("unseen tags have no entry", func(t *testing.T) {
		idx := gallery.BuildFacetIndex(scenario())

		_, ok := idx.Technologies["Svelte"]
		assert.False(t, ok)
	})

	t.Run("facets are sorted lexicographically", func(t *testing.T) {
		items := []catalog.Item{
			item("1", []string{"Vue", "Angular", "React"}, []string{"Writer", "Dev"}, false),
			item("2", []string{"React"}, nil, false),
		}

		idx := gallery.BuildFacetIndex(items)

		assert.Equal(t, []gallery.FacetCount{
			{Tag: "Angular", Count: 1},
			{Tag: "React", Count: 2},
			{Tag: "Vue", Count: 1},
		}, idx.TechnologyFacets())
		assert.Equal(t, []gallery.FacetCount{
			{Tag: "Dev", Count: 1},
			{Tag: "Writer", Count: 1},
		}, idx.RoleFacets())
	})
}

func TestApplyFilters(t *testing.T) {
	t.Run("empty selection returns items unchanged", func(t *testing.T) {
		items := scenario()

		got := gallery.ApplyFilters(items, gallery.Selection{})

		assert.Equal(t, items, got)
	})

	t.Run("technologies match with OR semantics", func(t *testing.T) {
		got := gallery.ApplyFilters(scenario(), gallery.Selection{Technologies: []string{"Vue", "Svelte"}})

		assert.Equal(t, []string{"B", "C"}, ids(got))
	})

	t.Run("role matches exactly and case sensitively", func(t *testing.T) {
		got := gallery.ApplyFilters(scenario(), gallery.Selection{Role: "dev"})

		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("facets combine with AND", func(t *testing.T) {
		got := gallery.ApplyFilters(scenario(), gallery.Selection{
			Technologies: []string{"React"},
			Role:         "Dev",
		})

		assert.Equal(t, []string{"A"}, ids(got))
	})

	t.Run("item without roles only passes the all roles selection", func(t *testing.T) {
		items := []catalog.Item{item("X", []string{"Go"}, nil, false)}

		assert.Len(t, gallery.ApplyFilters(items, gallery.Selection{Role: gallery.AllRoles}), 1)
		assert.Empty(t, gallery.ApplyFilters(items, gallery.Selection{Role: "Dev"}))
	})

	t.Run("item without technologies never matches a technology selection", func(t *testing.T) {
		got := gallery.ApplyFilters(scenario(), gallery.Selection{Technologies: []string{"React", "Vue"}})

		assert.NotContains(t, ids(got), "D")
	})
}

func TestSelectForDisplay(t *testing.T) {
	pinnedThenRest := func(pinned, rest int) []catalog.Item {
		var items []catalog.Item
		for i := range pinned {
			items = append(items, item(string(rune('a'+i)), nil, nil, true))
		}
		for i := range rest {
			items = append(items, item(string(rune('p'+i)), nil, nil, false))
		}
		return items
	}

	t.Run("uncapped view is identity", func(t *testing.T) {
		items := scenario()

		got := gallery.SelectForDisplay(items, gallery.Uncapped)

		assert.Equal(t, ids(items), ids(got))
	})

	t.Run("more pinned items than cap shows only pinned", func(t *testing.T) {
		got := gallery.SelectForDisplay(pinnedThenRest(5, 5), gallery.CapAt(3))

		assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	})

	t.Run("pinned items are followed by the first unpinned", func(t *testing.T) {
		got := gallery.SelectForDisplay(pinnedThenRest(2, 5), gallery.CapAt(4))

		assert.Equal(t, []string{"a", "b", "p", "q"}, ids(got))
	})

	t.Run("pinned items move ahead of earlier unpinned ones", func(t *testing.T) {
		got := gallery.SelectForDisplay(scenario(), gallery.CapAt(2))

		assert.Equal(t, []string{"A", "D"}, ids(got))
	})

	t.Run("zero cap yields empty result", func(t *testing.T) {
		assert.Empty(t, gallery.SelectForDisplay(scenario(), gallery.CapAt(0)))
	})

	t.Run("negative cap behaves as zero", func(t *testing.T) {
		assert.Empty(t, gallery.SelectForDisplay(scenario(), gallery.CapAt(-4)))
	})

	t.Run("cap larger than input keeps every item reordered", func(t *testing.T) {
		got := gallery.SelectForDisplay(scenario(), gallery.CapAt(10))

		assert.Equal(t, []string{"A", "D", "B", "C"}, ids(got))
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		items := scenario()

		_ = gallery.SelectForDisplay(items, gallery.CapAt(2))

		assert.Equal(t, []string{"A", "B", "C", "D"}, ids(items))
	})
}

func TestBuildPage(t *testing.T) {
	t.Run("facets cover the base collection while items are filtered", func(t *testing.T) {
		page := gallery.BuildPage(scenario(), gallery.Selection{Role: "Dev"}, gallery.CapAt(2), gallery.NewSession())

		assert.Equal(t, 2, page.Facets.Technologies["React"])
		assert.Equal(t, 3, page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "A", page.Items[0].ID)
		assert.Equal(t, "D", page.Items[1].ID)
	})

	t.Run("protected items are masked", func(t *testing.T) {
		page := gallery.BuildPage(scenario(), gallery.Selection{Role: "Designer"}, gallery.Uncapped, gallery.NewSession())

		require.Len(t, page.Items, 1)
		assert.Equal(t, gallery.RedactedTitle, page.Items[0].Title)
		assert.True(t, page.Items[0].Locked)
	})
}
