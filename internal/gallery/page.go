package gallery

import "folio/internal/catalog"

// Page is one render of a gallery: facets over the whole base collection,
// and the filtered, selected and gated items.
type Page struct {
	Facets FacetIndex
	Items  []ItemView
	Total  int
}

func BuildPage(base []catalog.Item, sel Selection, limit Cap, s *Session) Page {
	filtered := ApplyFilters(base, sel)
	shown := SelectForDisplay(filtered, limit)
	return Page{
		Facets: BuildFacetIndex(base),
		Items:  s.Views(shown),
		Total:  len(filtered),
	}
}
