package gallery

import (
	"slices"

	"folio/internal/catalog"
)

// AllRoles disables the role facet.
const AllRoles = ""

// Selection is the filter state of one viewer. Technologies match with OR
// semantics, the role must match exactly, and both facets are ANDed.
type Selection struct {
	Technologies []string
	Role         string
}

func (s Selection) IsEmpty() bool {
	return len(s.Technologies) == 0 && s.Role == AllRoles
}

// ApplyFilters returns the items satisfying sel in their original order.
func ApplyFilters(items []catalog.Item, sel Selection) []catalog.Item {
	results := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if matchesTechnologies(it, sel.Technologies) && matchesRole(it, sel.Role) {
			results = append(results, it)
		}
	}
	return results
}

func matchesTechnologies(it catalog.Item, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	return slices.ContainsFunc(wanted, it.HasTechnology)
}

func matchesRole(it catalog.Item, role string) bool {
	if role == AllRoles {
		return true
	}
	return it.HasRole(role)
}
