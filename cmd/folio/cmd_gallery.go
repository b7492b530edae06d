package main

import (
	"context"
	"fmt"
	"log/slog"

	"folio/internal/catalog"
	"folio/internal/gallery"
)

type GalleryCmd struct {
	Tech  []string `short:"t" help:"Filter by technologies (matches any)"`
	Role  string   `short:"r" help:"Filter by role (exact match)"`
	All   bool     `help:"Include unpublished projects"`
	Watch bool     `short:"w" help:"Re-render whenever the catalog file changes"`
}

func (cmd *GalleryCmd) render(ctx context.Context, g *Globals) error {
	snap, err := fetchSnapshot(ctx, g.Cat, cmd.All)
	if err != nil {
		return err
	}

	sel := gallery.Selection{Technologies: cmd.Tech, Role: cmd.Role}
	page := gallery.BuildPage(snap.items, sel, gallery.Uncapped, g.NewSession())

	fmt.Fprint(g.Out, g.Render.RenderGallery(toGalleryView(ctx, g, "Projects", page, sel, snap.palette)))
	return nil
}

func (cmd *GalleryCmd) Run(ctx context.Context, g *Globals) error {
	if err := cmd.render(ctx, g); err != nil {
		return err
	}
	if !cmd.Watch || g.CatalogPath == "" {
		return nil
	}

	return catalog.Watch(ctx, g.CatalogPath, func() {
		if err := g.Cat.Load(); err != nil {
			slog.Warn("failed to reload catalog", "error", err)
			return
		}
		if err := cmd.render(ctx, g); err != nil {
			slog.Warn("failed to render gallery", "error", err)
		}
	})
}
