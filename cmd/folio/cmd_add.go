package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"folio/internal/catalog"
	"folio/internal/gallery"
	"folio/internal/ui"
)

type AddCmd struct {
	Title    string   `arg:"" optional:"" help:"Project title (starts the wizard when omitted)"`
	Summary  string   `help:"Short description shown on the card"`
	Body     string   `help:"Detail body (markdown)"`
	BodyFile string   `name:"body-file" type:"existingfile" help:"Read the detail body from a file"`
	Tech     []string `short:"t" help:"Technologies"`
	Role     []string `short:"r" help:"Roles"`
	Link     string   `help:"External link (http or https)"`
	Image    string   `help:"Image reference (object key or relative path)"`
	Order    int      `help:"Display order (ascending)"`
	Pin      bool     `help:"Pin to the teaser"`
	Publish  bool     `help:"Publish immediately"`
	Secret   string   `help:"Protect the project with a password"`
}

func (cmd *AddCmd) draft(g *Globals) (bool, error) {
	if cmd.Title != "" {
		return true, nil
	}
	if g.Wizard == nil {
		return false, catalog.ErrEmptyTitle
	}

	d := ui.Draft{Summary: cmd.Summary}
	if err := g.Wizard(&d); err != nil {
		if errors.Is(err, ui.ErrWizardAborted) {
			return false, nil
		}
		return false, err
	}
	fmt.Fprint(g.Out, ui.RenderDraft("Add project", d.Fields()))

	cmd.Title = d.Title
	cmd.Summary = d.Summary
	cmd.Tech = append(cmd.Tech, ui.SplitTags(d.Technologies)...)
	cmd.Role = append(cmd.Role, ui.SplitTags(d.Roles)...)
	return true, nil
}

func (cmd *AddCmd) body() (string, error) {
	if cmd.BodyFile == "" {
		return cmd.Body, nil
	}
	data, err := os.ReadFile(cmd.BodyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read body file: %w", err)
	}
	return string(data), nil
}

func (cmd *AddCmd) Run(g *Globals) error {
	proceed, err := cmd.draft(g)
	if err != nil || !proceed {
		return err
	}

	body, err := cmd.body()
	if err != nil {
		return err
	}

	secret, err := storedSecret(g.Scheme, cmd.Secret)
	if err != nil {
		return err
	}

	it := catalog.NewItem(cmd.Title).
		WithDescription(cmd.Summary, body).
		WithTechnologies(cmd.Tech...).
		WithRoles(cmd.Role...).
		WithLink(cmd.Link).
		WithImage(cmd.Image).
		WithOrder(cmd.Order).
		WithPinned(cmd.Pin).
		WithPublished(cmd.Publish).
		WithSecret(secret)

	if err := g.Cat.Add(it); err != nil {
		return fmt.Errorf("failed to add project %q: %w", cmd.Title, err)
	}

	if err := g.Cat.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	stored, err := g.Cat.Get(it.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Out, ui.RenderSaved("Added", stored.Title, stored.ID, itemChecks(stored)))
	return nil
}

// storedSecret converts a plain secret into what the configured scheme keeps
// on disk.
func storedSecret(scheme gallery.Scheme, plain string) (string, error) {
	if plain == "" || scheme != gallery.SchemeArgon2id {
		return plain, nil
	}
	hash, err := gallery.HashSecret(plain, nil)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return hash, nil
}

func itemChecks(it catalog.Item) []string {
	var checks []string
	if it.Published {
		checks = append(checks, "published")
	} else {
		checks = append(checks, "draft (not published)")
	}
	if it.Pinned {
		checks = append(checks, "pinned to teaser")
	}
	if it.Protected {
		checks = append(checks, "password protected")
	}
	if len(it.Technologies) > 0 {
		checks = append(checks, fmt.Sprintf("%d technologies", len(it.Technologies)))
	}
	if len(it.Roles) > 0 {
		checks = append(checks, "roles: "+joinTags(it.Roles))
	}
	checks = append(checks, "order "+strconv.Itoa(it.DisplayOrder))
	return checks
}
