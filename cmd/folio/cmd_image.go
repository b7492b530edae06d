package main

import (
	"context"
	"fmt"
)

type ImageCmd struct {
	Query string `arg:"" help:"Project id or title"`
}

// Run prints the resolved URL. Resolution never fails; a missing or broken
// reference yields the placeholder.
func (cmd *ImageCmd) Run(ctx context.Context, g *Globals) error {
	it, err := findItem(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	fmt.Fprintln(g.Out, g.Images.Resolve(ctx, it.ImageRef))
	return nil
}
