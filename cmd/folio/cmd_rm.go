package main

import (
	"fmt"

	"folio/internal/gallery"
)

type RmCmd struct {
	Query string `arg:"" help:"Project id or title to remove"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	it, err := findItem(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if err := g.Cat.Remove(it.ID); err != nil {
		return fmt.Errorf("failed to remove project %s: %w", shortID(it.ID), err)
	}

	if err := g.Cat.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	title := it.Title
	if it.Protected {
		title = gallery.RedactedTitle
	}
	fmt.Fprintf(g.Out, "Removed: %s (%s)\n", title, shortID(it.ID))
	return nil
}
