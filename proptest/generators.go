package proptest

import (
	"fmt"

	"folio/internal/catalog"
	"folio/internal/gallery"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	queryGen   = rapid.StringMatching(`[a-z]{1,10}`)
	secretGen  = rapid.StringMatching(`[a-zA-Z0-9]{1,12}`)

	techPool = []string{"Go", "React", "Vue", "Rust", "SQL", "go"}
	rolePool = []string{"Dev", "Designer", "Lead", "dev"}
)

func validTitleGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z0-9 _-]{0,30}`)
}

// tagsGen draws from a small pool so facets overlap; duplicates and
// case-only variants are deliberate.
func tagsGen(pool []string) *rapid.Generator[[]string] {
	return rapid.SliceOfN(rapid.SampledFrom(pool), 0, 4)
}

type ItemGenOpt func(*itemGenConfig)

type itemGenConfig struct {
	id        *string
	protected *bool
}

func WithID(id string) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.id = &id
	}
}

func WithProtected(protected bool) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.protected = &protected
	}
}

func GenItem(t *rapid.T, opts ...ItemGenOpt) catalog.Item {
	cfg := &itemGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	it := catalog.NewItem(validTitleGen().Draw(t, "title")).
		WithTechnologies(tagsGen(techPool).Draw(t, "technologies")...).
		WithRoles(tagsGen(rolePool).Draw(t, "roles")...).
		WithOrder(rapid.IntRange(-5, 20).Draw(t, "order")).
		WithPinned(rapid.Bool().Draw(t, "pinned")).
		WithPublished(rapid.Bool().Draw(t, "published"))

	if cfg.id != nil {
		it.ID = *cfg.id
	}

	protected := rapid.Bool().Draw(t, "protected")
	if cfg.protected != nil {
		protected = *cfg.protected
	}
	if protected {
		it = it.WithSecret(secretGen.Draw(t, "secret"))
	}
	return it
}

// collectionGen yields items with unique, readable ids in display order.
func collectionGen(minLen, maxLen int) *rapid.Generator[[]catalog.Item] {
	return rapid.Custom(func(t *rapid.T) []catalog.Item {
		n := rapid.IntRange(minLen, maxLen).Draw(t, "numItems")
		items := make([]catalog.Item, n)
		for i := range items {
			items[i] = GenItem(t, WithID(fmt.Sprintf("item-%02d", i)))
		}
		return items
	})
}

func selectionGen() *rapid.Generator[gallery.Selection] {
	return rapid.Custom(func(t *rapid.T) gallery.Selection {
		sel := gallery.Selection{
			Technologies: rapid.SliceOfNDistinct(rapid.SampledFrom(techPool), 0, 3, rapid.ID[string]).Draw(t, "selTech"),
		}
		if rapid.Bool().Draw(t, "hasRole") {
			sel.Role = rapid.SampledFrom(rolePool).Draw(t, "selRole")
		}
		return sel
	})
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("key: [unclosed"),
		rapid.Just("key: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("items:\n  - id: missing\n  title: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func invalidTypesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`version: "not_a_number"
items: []
`),
		rapid.Just(`version: 1
items:
  - id: test-id
    title: [not, a, string]
`),
		rapid.Just(`version: 1
items:
  - id: test-id
    title: Atlas
    display_order: first
`),
		rapid.Just(`version: 1
items:
  - id: test-id
    title: Atlas
    created_at: "not-a-date"
`),
		rapid.Just(`version: 1
roles: "Dev"
items: []
`),
	)
}

func extraFieldsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		extraField := rapid.SampledFrom([]string{
			"unknown_field",
			"extra",
			"bar_baz",
			"randomField123",
		}).Draw(t, "fieldName")
		extraValue := rapid.SampledFrom([]string{
			"string_value",
			"123",
			"true",
			"[1, 2, 3]",
			"{nested: value}",
		}).Draw(t, "fieldValue")

		return fmt.Sprintf(`version: 1
%s: %s
items:
  - id: test-id
    title: Atlas
    %s: %s
    display_order: 1
    published: true
    pinned: false
    protected: false
`, extraField, extraValue, extraField, extraValue)
	})
}
