package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"folio/internal/gallery"
)

type FacetsCmd struct {
	All bool `help:"Count unpublished projects too"`
}

func (cmd *FacetsCmd) Run(ctx context.Context, g *Globals) error {
	snap, err := fetchSnapshot(ctx, g.Cat, cmd.All)
	if err != nil {
		return err
	}

	idx := gallery.BuildFacetIndex(snap.items)

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TECHNOLOGY\tCOUNT")
	for _, f := range idx.TechnologyFacets() {
		fmt.Fprintf(w, "%s\t%d\n", f.Tag, f.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(g.Out)

	w = tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tCOLOR\tCOUNT")
	for _, f := range idx.RoleFacets() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", f.Tag, snap.palette.Color(f.Tag), f.Count)
	}
	return w.Flush()
}
