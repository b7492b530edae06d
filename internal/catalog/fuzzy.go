package catalog

import "github.com/sahilm/fuzzy"

type titleSource []Item

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// FuzzyFind ranks items whose title contains the query's characters in
// order, best match first. Ties keep the input order.
func FuzzyFind(items []Item, query string) []Item {
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, titleSource(items))
	out := make([]Item, len(matches))
	for i, m := range matches {
		out[i] = items[m.Index]
	}
	return out
}
