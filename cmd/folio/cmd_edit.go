package main

import (
	"fmt"

	"folio/internal/catalog"
	"folio/internal/ui"
)

type EditCmd struct {
	Query       string   `arg:"" help:"Project id or title to edit"`
	Title       string   `help:"Set title"`
	Summary     string   `help:"Set short description"`
	Body        string   `help:"Set detail body (markdown)"`
	Link        *string  `help:"Set external link (empty clears it)"`
	Image       *string  `help:"Set image reference (empty clears it)"`
	Order       *int     `help:"Set display order"`
	AddTech     []string `help:"Add technologies"`
	RmTech      []string `help:"Remove technologies"`
	AddRole     []string `help:"Add roles"`
	RmRole      []string `help:"Remove roles"`
	Pin         bool     `help:"Pin to the teaser" xor:"pin"`
	Unpin       bool     `help:"Unpin from the teaser" xor:"pin"`
	Publish     bool     `help:"Publish" xor:"publish"`
	Unpublish   bool     `help:"Unpublish" xor:"publish"`
	Secret      string   `help:"Set a new password" xor:"secret"`
	ClearSecret bool     `name:"clear-secret" help:"Remove password protection" xor:"secret"`
}

func (cmd *EditCmd) applyEdits(it *catalog.Item, secret string) {
	if cmd.Title != "" {
		it.Title = cmd.Title
	}
	if cmd.Summary != "" {
		it.ShortDescription = cmd.Summary
	}
	if cmd.Body != "" {
		it.DetailBody = cmd.Body
	}
	if cmd.Link != nil {
		it.ExternalLink = *cmd.Link
	}
	if cmd.Image != nil {
		it.ImageRef = *cmd.Image
	}
	if cmd.Order != nil {
		it.DisplayOrder = *cmd.Order
	}
	for _, tech := range cmd.AddTech {
		it.AddTechnology(tech)
	}
	for _, tech := range cmd.RmTech {
		it.RemoveTechnology(tech)
	}
	for _, role := range cmd.AddRole {
		it.AddRole(role)
	}
	for _, role := range cmd.RmRole {
		it.RemoveRole(role)
	}
	switch {
	case cmd.Pin:
		it.Pinned = true
	case cmd.Unpin:
		it.Pinned = false
	}
	switch {
	case cmd.Publish:
		it.Published = true
	case cmd.Unpublish:
		it.Published = false
	}
	switch {
	case secret != "":
		*it = it.WithSecret(secret)
	case cmd.ClearSecret:
		*it = it.WithSecret("")
	}
}

func (cmd *EditCmd) Run(g *Globals) error {
	it, err := findItem(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	secret, err := storedSecret(g.Scheme, cmd.Secret)
	if err != nil {
		return err
	}

	cmd.applyEdits(&it, secret)

	if err := g.Cat.Update(it); err != nil {
		return fmt.Errorf("failed to update project %q: %w", it.Title, err)
	}

	if err := g.Cat.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	stored, err := g.Cat.Get(it.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Out, ui.RenderSaved("Updated", stored.Title, stored.ID, itemChecks(stored)))
	return nil
}
