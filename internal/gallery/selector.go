package gallery

import "folio/internal/catalog"

// Cap bounds a teaser view. The zero value is Uncapped.
type Cap struct {
	n   int
	set bool
}

var Uncapped = Cap{}

// CapAt limits a view to n items. Negative values behave as zero.
func CapAt(n int) Cap {
	return Cap{n: max(n, 0), set: true}
}

func (c Cap) Limit() (int, bool) {
	return c.n, c.set
}

// SelectForDisplay leaves uncapped views untouched. A capped view lists
// pinned items first, then the rest, each group in input order, and keeps
// the first n.
func SelectForDisplay(items []catalog.Item, limit Cap) []catalog.Item {
	n, ok := limit.Limit()
	if !ok {
		return items
	}

	ordered := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if it.Pinned {
			ordered = append(ordered, it)
		}
	}
	for _, it := range items {
		if !it.Pinned {
			ordered = append(ordered, it)
		}
	}

	if n < len(ordered) {
		ordered = ordered[:n]
	}
	return ordered
}
