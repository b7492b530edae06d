package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"folio/internal/catalog"
	"folio/internal/gallery"
)

type RoleCmd struct {
	Add RoleAddCmd `cmd:"" help:"Register a role and its chip color"`
	Rm  RoleRmCmd  `cmd:"" help:"Remove role metadata (items keep the tag)"`
	Ls  RoleLsCmd  `cmd:"" default:"1" help:"List roles with usage counts"`
}

type RoleAddCmd struct {
	Name  string `arg:"" help:"Role name (exact, case-sensitive)"`
	Color string `help:"ANSI or hex color for the chip (defaults to 8)"`
}

func (cmd *RoleAddCmd) Run(g *Globals) error {
	r, err := catalog.NewRole(cmd.Name, cmd.Color)
	if err != nil {
		return err
	}
	if err := g.Cat.AddRole(r); err != nil {
		return fmt.Errorf("failed to add role: %w", err)
	}
	if err := g.Cat.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	fmt.Fprintf(g.Out, "Added role: %s (%s)\n", r.Name, r.Color)
	return nil
}

type RoleRmCmd struct {
	Name string `arg:"" help:"Role name"`
}

func (cmd *RoleRmCmd) Run(g *Globals) error {
	if err := g.Cat.RemoveRole(cmd.Name); err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}
	if err := g.Cat.Save(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	fmt.Fprintf(g.Out, "Removed role: %s\n", cmd.Name)
	return nil
}

type RoleLsCmd struct{}

// Run lists registered roles first, then tags that appear on items without
// metadata.
func (cmd *RoleLsCmd) Run(ctx context.Context, g *Globals) error {
	snap, err := fetchSnapshot(ctx, g.Cat, true)
	if err != nil {
		return err
	}
	idx := gallery.BuildFacetIndex(snap.items)

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tCOLOR\tITEMS")
	seen := make(map[string]bool)
	for _, r := range g.Cat.Roles() {
		seen[r.Name] = true
		fmt.Fprintf(w, "%s\t%s\t%d\n", r.Name, r.Color, idx.Roles[r.Name])
	}
	for _, f := range idx.RoleFacets() {
		if seen[f.Tag] {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", f.Tag, "-", f.Count)
	}
	return w.Flush()
}
