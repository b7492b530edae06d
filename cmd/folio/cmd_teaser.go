package main

import (
	"context"
	"fmt"

	"folio/internal/gallery"
)

type TeaserCmd struct {
	Cap *int `short:"n" help:"Maximum number of projects (defaults to FOLIO_TEASER_CAP)"`
}

func (cmd *TeaserCmd) limit(g *Globals) gallery.Cap {
	if cmd.Cap != nil {
		return gallery.CapAt(*cmd.Cap)
	}
	return gallery.CapAt(g.TeaserCap)
}

func (cmd *TeaserCmd) Run(ctx context.Context, g *Globals) error {
	snap, err := fetchSnapshot(ctx, g.Cat, false)
	if err != nil {
		return err
	}

	page := gallery.BuildPage(snap.items, gallery.Selection{}, cmd.limit(g), g.NewSession())

	fmt.Fprint(g.Out, g.Render.RenderGallery(toGalleryView(ctx, g, "Featured", page, gallery.Selection{}, snap.palette)))
	return nil
}
