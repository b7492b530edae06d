package main

import (
	"context"
	"errors"
	"fmt"

	"folio/cmd/folio/render"
	"folio/internal/catalog"
	"folio/internal/gallery"
	"folio/internal/ui"
)

type ShowCmd struct {
	Query  string `arg:"" help:"Project id or title"`
	Secret string `help:"Password for a protected project (single attempt, no prompt)"`
}

func (cmd *ShowCmd) Run(ctx context.Context, g *Globals) error {
	item, err := findItem(g.Cat, cmd.Query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	roles, err := g.Cat.FetchRoles(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch roles: %w", err)
	}

	session := g.NewSession()
	var notice string
	if session.State(item) != gallery.Unlocked {
		session.Select(item)
		if notice, err = cmd.challenge(g, session, item); err != nil {
			return err
		}
	}

	view := session.View(item)
	detail := render.DetailView{
		Card:   toCard(ctx, g, view, catalog.RoleColors(roles)),
		Link:   view.ExternalLink,
		Body:   view.DetailBody,
		Notice: notice,
	}
	fmt.Fprint(g.Out, g.Render.RenderDetail(detail))
	return nil
}

// challenge drives the gate for a locked item. It returns a notice to print
// when the item stays locked.
func (cmd *ShowCmd) challenge(g *Globals, session *gallery.Session, item catalog.Item) (string, error) {
	if cmd.Secret != "" {
		if session.Submit(item, cmd.Secret) == gallery.OutcomeUnlocked {
			return "", nil
		}
		session.Cancel()
		return "✗ " + gallery.ErrIncorrectSecret.Error(), nil
	}

	if g.Prompt == nil {
		session.Cancel()
		return "This project is password protected.", nil
	}

	label := "Project " + shortID(item.ID)
	var lastErr error
	for {
		candidate, err := g.Prompt(label, lastErr)
		if errors.Is(err, ui.ErrChallengeAborted) {
			session.Cancel()
			return "This project is password protected.", nil
		}
		if err != nil {
			session.Cancel()
			return "", err
		}

		switch session.Submit(item, candidate) {
		case gallery.OutcomeUnlocked:
			return "", nil
		case gallery.OutcomeIncorrect:
			lastErr = gallery.ErrIncorrectSecret
		default:
			return "", nil
		}
	}
}
