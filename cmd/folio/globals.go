package main

import (
	"io"

	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/gallery"
	"folio/internal/media"
	"folio/internal/ui"
)

type Globals struct {
	Cat         catalog.Catalog
	CatalogPath string
	Out         io.Writer
	Render      render.Renderer
	Images      media.Resolver
	Verifier    gallery.Verifier
	Scheme      gallery.Scheme
	TeaserCap   int
	Prompt      ui.PromptFunc
	Wizard      ui.WizardFunc
}

// NewSession starts the access state for one command run; unlocks never
// outlive the process.
func (g *Globals) NewSession() *gallery.Session {
	return gallery.NewSession(gallery.WithVerifier(g.Verifier))
}
