package catalog_test

import (
	"testing"

	"folio/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("assigns a unique id and timestamps", func(t *testing.T) {
		a := catalog.NewItem("Atlas")
		b := catalog.NewItem("Atlas")

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	})

	t.Run("starts unpublished, unpinned and unprotected", func(t *testing.T) {
		it := catalog.NewItem("Atlas")

		assert.False(t, it.Published)
		assert.False(t, it.Pinned)
		assert.False(t, it.Protected)
	})
}

func TestBuilderMethods_Immutability(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(catalog.Item) catalog.Item
		verify func(t *testing.T, original, mutated catalog.Item)
	}{
		{
			name:   "WithTechnologies",
			mutate: func(it catalog.Item) catalog.Item { return it.WithTechnologies("Go") },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.Empty(t, orig.Technologies)
				assert.Equal(t, []string{"Go"}, mut.Technologies)
			},
		},
		{
			name:   "WithRoles",
			mutate: func(it catalog.Item) catalog.Item { return it.WithRoles("Dev") },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.Empty(t, orig.Roles)
				assert.Equal(t, []string{"Dev"}, mut.Roles)
			},
		},
		{
			name:   "WithDescription",
			mutate: func(it catalog.Item) catalog.Item { return it.WithDescription("short", "# body") },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.Empty(t, orig.ShortDescription)
				assert.Equal(t, "short", mut.ShortDescription)
				assert.Equal(t, "# body", mut.DetailBody)
			},
		},
		{
			name:   "WithPinned",
			mutate: func(it catalog.Item) catalog.Item { return it.WithPinned(true) },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.False(t, orig.Pinned)
				assert.True(t, mut.Pinned)
			},
		},
		{
			name:   "WithPublished",
			mutate: func(it catalog.Item) catalog.Item { return it.WithPublished(true) },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.False(t, orig.Published)
				assert.True(t, mut.Published)
			},
		},
		{
			name:   "WithOrder",
			mutate: func(it catalog.Item) catalog.Item { return it.WithOrder(7) },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.Zero(t, orig.DisplayOrder)
				assert.Equal(t, 7, mut.DisplayOrder)
			},
		},
		{
			name:   "WithSecret",
			mutate: func(it catalog.Item) catalog.Item { return it.WithSecret("abc") },
			verify: func(t *testing.T, orig, mut catalog.Item) {
				assert.False(t, orig.Protected)
				assert.True(t, mut.Protected)
				assert.Equal(t, "abc", mut.AccessSecret)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" preserves original", func(t *testing.T) {
			original := catalog.NewItem("test")
			mutated := tt.mutate(original)
			tt.verify(t, original, mutated)
		})
	}
}

func TestWithTechnologies_DoesNotShareMemory(t *testing.T) {
	techs := []string{"Go", "React"}
	it := catalog.NewItem("Atlas").WithTechnologies(techs...)

	techs[0] = "Rust"

	assert.Equal(t, []string{"Go", "React"}, it.Technologies)
}

func TestWithSecret_EmptyUnprotects(t *testing.T) {
	it := catalog.NewItem("Vault").WithSecret("abc").WithSecret("")

	assert.False(t, it.Protected)
	assert.Empty(t, it.AccessSecret)
}

func TestTagHelpers(t *testing.T) {
	t.Run("has checks are exact and case-sensitive", func(t *testing.T) {
		it := catalog.NewItem("Atlas").WithTechnologies("React").WithRoles("Dev")

		assert.True(t, it.HasTechnology("React"))
		assert.False(t, it.HasTechnology("react"))
		assert.True(t, it.HasRole("Dev"))
		assert.False(t, it.HasRole("Developer"))
	})

	t.Run("add ignores duplicates and empty tags", func(t *testing.T) {
		it := catalog.NewItem("Atlas").WithTechnologies("Go")

		it.AddTechnology("Go")
		it.AddTechnology("")
		it.AddTechnology("React")
		it.AddRole("Dev")
		it.AddRole("Dev")

		assert.Equal(t, []string{"Go", "React"}, it.Technologies)
		assert.Equal(t, []string{"Dev"}, it.Roles)
	})

	t.Run("remove drops every occurrence", func(t *testing.T) {
		it := catalog.Item{Technologies: []string{"Go", "React", "Go"}, Roles: []string{"Dev"}}

		it.RemoveTechnology("Go")
		it.RemoveRole("Missing")

		assert.Equal(t, []string{"React"}, it.Technologies)
		assert.Equal(t, []string{"Dev"}, it.Roles)
	})
}

func TestPublishedOnly(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Published: true},
		{ID: "2"},
		{ID: "3", Published: true},
	}

	got := catalog.PublishedOnly(items)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.NotNil(t, catalog.PublishedOnly(nil))
}
