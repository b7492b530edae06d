package ui

import (
	"errors"
	"strings"

	"folio/internal/catalog"

	"github.com/charmbracelet/huh"
)

var ErrWizardAborted = errors.New("wizard cancelled")

// Draft holds the free-text answers of the add wizard. Tags are entered
// comma separated.
type Draft struct {
	Title        string
	Summary      string
	Technologies string
	Roles        string
}

// WizardFunc fills in a draft interactively.
type WizardFunc func(d *Draft) error

func (d Draft) Fields() []Field {
	return []Field{
		{Label: "Title", Value: strings.TrimSpace(d.Title)},
		{Label: "Summary", Value: strings.TrimSpace(d.Summary)},
		{Label: "Technologies", Value: strings.Join(SplitTags(d.Technologies), ", ")},
		{Label: "Roles", Value: strings.Join(SplitTags(d.Roles), ", ")},
	}
}

func validateDraftTitle(title string) error {
	err := catalog.ValidateTitle(title)
	if errors.Is(err, catalog.ErrEmptyTitle) {
		return errors.New("Title cannot be empty")
	}
	return err
}

// SplitTags turns "Go, React,,Go" into [Go React Go]; duplicates are left to
// item normalization.
func SplitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// RunDraftWizard is the interactive WizardFunc.
func RunDraftWizard(d *Draft) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&d.Title).
				Validate(validateDraftTitle),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Summary").
				Description("One line shown on the gallery card").
				Value(&d.Summary),
			huh.NewInput().
				Title("Technologies").
				Description("Comma separated, e.g. Go, React").
				Value(&d.Technologies),
			huh.NewInput().
				Title("Roles").
				Description("Comma separated, e.g. Dev, Design").
				Value(&d.Roles),
		),
	).WithTheme(WizardTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrWizardAborted
		}
		return err
	}
	return nil
}
