package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/gallery"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []catalog.Item
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple projects match %q", e.Query)
}

// WriteMatches never prints the title of a protected candidate.
func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple projects match. Please be more specific:")
	for _, it := range e.Matches {
		label := it.Title
		if it.Protected {
			label = gallery.RedactedTitle
		}
		fmt.Fprintf(w, "  - %s (%s)\n", label, it.ID)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findItem resolves a query to one item. An exact id or title wins over
// partial matches; fuzzy title matches come next. Protected items are only
// reachable by id or id prefix, so a lookup never confirms their titles or
// technologies.
func findItem(cat catalog.Catalog, query string) (catalog.Item, error) {
	if it, err := cat.Get(query); err == nil {
		return it, nil
	}

	items := revealable(cat.Search(query), query)
	if len(items) == 0 {
		items = catalog.FuzzyFind(revealable(cat.List(), ""), query)
	}
	if len(items) == 0 {
		items = idPrefixMatches(cat.List(), query)
	}
	if len(items) == 0 {
		return catalog.Item{}, fmt.Errorf("no project found matching: %s", query)
	}
	if len(items) > 1 {
		for _, it := range items {
			if it.Title == query && !it.Protected {
				return it, nil
			}
		}
		return catalog.Item{}, &AmbiguousMatchError{Query: query, Matches: items}
	}
	return items[0], nil
}

// revealable drops protected items unless query names their id exactly.
func revealable(items []catalog.Item, query string) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if !it.Protected || (query != "" && strings.EqualFold(it.ID, query)) {
			out = append(out, it)
		}
	}
	return out
}

func idPrefixMatches(items []catalog.Item, query string) []catalog.Item {
	if query == "" {
		return nil
	}
	prefix := strings.ToLower(query)
	var out []catalog.Item
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(it.ID), prefix) {
			out = append(out, it)
		}
	}
	return out
}

type snapshot struct {
	items   []catalog.Item
	palette catalog.Palette
}

func fetchSnapshot(ctx context.Context, src catalog.DataSource, includeUnpublished bool) (snapshot, error) {
	items, err := src.FetchItems(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to fetch items: %w", err)
	}
	roles, err := src.FetchRoles(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to fetch roles: %w", err)
	}
	if !includeUnpublished {
		items = catalog.PublishedOnly(items)
	}
	return snapshot{items: items, palette: catalog.RoleColors(roles)}, nil
}

func toCard(ctx context.Context, g *Globals, v gallery.ItemView, palette catalog.Palette) render.Card {
	chips := make([]render.Chip, len(v.Roles))
	for i, role := range v.Roles {
		chips[i] = render.Chip{Label: role, Color: palette.Color(role)}
	}
	return render.Card{
		ID:           v.ID,
		Title:        v.Title,
		Summary:      v.ShortDescription,
		Image:        g.Images.Resolve(ctx, v.ImageRef),
		Technologies: v.Technologies,
		Roles:        chips,
		Pinned:       v.Pinned,
		Locked:       v.Locked,
	}
}

func toGalleryView(ctx context.Context, g *Globals, heading string, page gallery.Page, sel gallery.Selection, palette catalog.Palette) render.GalleryView {
	cards := make([]render.Card, len(page.Items))
	for i, v := range page.Items {
		cards[i] = toCard(ctx, g, v, palette)
	}
	return render.GalleryView{
		Heading: heading,
		Filters: describeSelection(sel),
		Shown:   len(cards),
		Total:   page.Total,
		Cards:   cards,
	}
}

func describeSelection(sel gallery.Selection) []string {
	var filters []string
	for _, tech := range sel.Technologies {
		filters = append(filters, "tech: "+tech)
	}
	if sel.Role != gallery.AllRoles {
		filters = append(filters, "role: "+sel.Role)
	}
	return filters
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
