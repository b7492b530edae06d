// Package gallery is the view engine behind the portfolio pages: facet
// counting, tag filtering, teaser selection and the per-item access gate.
// Everything here is synchronous and free of I/O.
package gallery

import (
	"sort"

	"folio/internal/catalog"
)

type FacetCount struct {
	Tag   string
	Count int
}

// FacetIndex counts, per tag, how many items of a base collection carry it.
// It is rebuilt whenever the collection changes.
type FacetIndex struct {
	Technologies map[string]int
	Roles        map[string]int
}

func BuildFacetIndex(items []catalog.Item) FacetIndex {
	idx := FacetIndex{
		Technologies: make(map[string]int),
		Roles:        make(map[string]int),
	}
	for _, it := range items {
		countOnce(idx.Technologies, it.Technologies)
		countOnce(idx.Roles, it.Roles)
	}
	return idx
}

func countOnce(counts map[string]int, tags []string) {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		counts[tag]++
	}
}

func (f FacetIndex) TechnologyFacets() []FacetCount {
	return sortedFacets(f.Technologies)
}

func (f FacetIndex) RoleFacets() []FacetCount {
	return sortedFacets(f.Roles)
}

func sortedFacets(counts map[string]int) []FacetCount {
	facets := make([]FacetCount, 0, len(counts))
	for tag, n := range counts {
		facets = append(facets, FacetCount{Tag: tag, Count: n})
	}
	sort.Slice(facets, func(i, j int) bool {
		return facets[i].Tag < facets[j].Tag
	})
	return facets
}
