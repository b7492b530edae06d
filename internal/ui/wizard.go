package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	savedSymbol  = "◆"
	answerSymbol = "◇"
	separator    = " · "
	borderTop    = "┌"
	borderSide   = "│"
	borderBottom = "└"
	checkSymbol  = "✓"
	lockSymbol   = "🔒"
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// Field is one wizard answer as echoed once the form has closed.
type Field struct {
	Label string
	Value string
}

// panel is the bordered block shared by the add and edit summaries.
type panel struct {
	border lipgloss.Style
	b      strings.Builder
}

func newPanel(heading string) *panel {
	p := &panel{border: lipgloss.NewStyle().Foreground(lipgloss.Color("8"))}
	p.b.WriteString(p.border.Render(borderTop) + " " + heading + "\n")
	return p
}

func (p *panel) line(text string) {
	p.b.WriteString(p.border.Render(borderSide))
	if text != "" {
		p.b.WriteString(" " + text)
	}
	p.b.WriteString("\n")
}

func (p *panel) String() string {
	p.b.WriteString(p.border.Render(borderBottom) + "\n")
	return p.b.String()
}

// RenderDraft echoes the answers of the add wizard. Blank answers are left
// out.
func RenderDraft(heading string, fields []Field) string {
	p := newPanel(heading)
	p.line("")
	for _, f := range fields {
		if f.Value != "" {
			p.line(answerSymbol + " " + f.Label + separator + f.Value)
		}
	}
	return p.String()
}

// RenderSaved summarises a stored item: its title, its id and one checked
// line per fact worth confirming.
func RenderSaved(verb, title, id string, checks []string) string {
	p := newPanel(savedSymbol + " " + verb + " " + title)
	p.line(id)
	if len(checks) > 0 {
		p.line("")
	}
	for _, check := range checks {
		p.line(checkSymbol + " " + check)
	}
	return p.String()
}
