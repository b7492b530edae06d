package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	pinBadge  = "📌 pinned"
	lockBadge = "🔒 locked"
	tagSep    = " · "

	shortIDLen = 8
)

type MarkdownFunc func(md string, width int) (string, error)

type LipglossRenderer struct {
	width    int
	r        *lipgloss.Renderer
	markdown MarkdownFunc

	headingStyle lipgloss.Style
	titleStyle   lipgloss.Style
	lockedStyle  lipgloss.Style
	summaryStyle lipgloss.Style
	techStyle    lipgloss.Style
	imageStyle   lipgloss.Style
	badgeStyle   lipgloss.Style
	noticeStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:        width,
		r:            r,
		markdown:     PlainMarkdown,
		headingStyle: r.NewStyle().Bold(true).Underline(true),
		titleStyle:   r.NewStyle().Bold(true),
		lockedStyle:  r.NewStyle().Faint(true).Bold(true),
		summaryStyle: r.NewStyle(),
		techStyle:    r.NewStyle().Foreground(lipgloss.Color("6")),
		imageStyle:   r.NewStyle().Faint(true),
		badgeStyle:   r.NewStyle().Foreground(lipgloss.Color("11")),
		noticeStyle:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// NewLipglossRendererAuto sizes the output to the terminal and renders
// detail bodies with glamour's automatic style.
func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width).WithMarkdown(GlamourMarkdown)
}

func (r *LipglossRenderer) WithMarkdown(fn MarkdownFunc) *LipglossRenderer {
	r.markdown = fn
	return r
}

// PlainMarkdown returns the markdown untouched.
func PlainMarkdown(md string, _ int) (string, error) {
	return md, nil
}

func GlamourMarkdown(md string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(md)
}

func (r *LipglossRenderer) RenderGallery(view GalleryView) string {
	var sb strings.Builder

	if view.Heading != "" {
		sb.WriteString(r.headingStyle.Render(view.Heading))
		sb.WriteString(r.imageStyle.Render(fmt.Sprintf("  %d of %d", view.Shown, view.Total)))
		sb.WriteString("\n")
	}
	if len(view.Filters) > 0 {
		sb.WriteString(r.imageStyle.Render("filters: " + strings.Join(view.Filters, ", ")))
		sb.WriteString("\n")
	}
	if view.Heading != "" || len(view.Filters) > 0 {
		sb.WriteString("\n")
	}

	if view.IsEmpty() {
		sb.WriteString("No projects found.\n")
		return sb.String()
	}

	for i, card := range view.Cards {
		last := i == len(view.Cards)-1
		sb.WriteString(r.renderCard(card, last))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderCard(c Card, last bool) string {
	titleStyle := r.titleStyle
	if c.Locked {
		titleStyle = r.lockedStyle
	}

	title := titleStyle.Render(c.Title)
	badge := r.badgeStyle.Render(r.badge(c))

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(badge))
	lines := []string{title + strings.Repeat(" ", padding) + badge}

	if c.Summary != "" {
		lines = append(lines, r.summaryStyle.Render("  "+c.Summary))
	}
	if len(c.Technologies) > 0 {
		lines = append(lines, r.techStyle.Render("  "+strings.Join(c.Technologies, tagSep)))
	}
	if len(c.Roles) > 0 {
		lines = append(lines, "  "+r.renderChips(c.Roles))
	}
	if c.Image != "" {
		lines = append(lines, r.imageStyle.Render("  "+c.Image))
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) badge(c Card) string {
	var parts []string
	if c.Pinned {
		parts = append(parts, pinBadge)
	}
	if c.Locked {
		parts = append(parts, lockBadge)
		// A locked card shows no title, so the id is how it gets opened.
		if c.ID != "" {
			parts = append(parts, "id "+c.ID[:min(len(c.ID), shortIDLen)])
		}
	}
	return strings.Join(parts, " ")
}

func (r *LipglossRenderer) renderChips(chips []Chip) string {
	rendered := make([]string, len(chips))
	for i, chip := range chips {
		rendered[i] = r.r.NewStyle().Foreground(lipgloss.Color(chip.Color)).Render("[" + chip.Label + "]")
	}
	return strings.Join(rendered, " ")
}

func (r *LipglossRenderer) RenderDetail(view DetailView) string {
	var sb strings.Builder

	sb.WriteString(r.renderCard(view.Card, true))
	sb.WriteString("\n")

	if view.Link != "" {
		sb.WriteString(r.imageStyle.Render("  " + view.Link))
		sb.WriteString("\n")
	}
	if view.Notice != "" {
		sb.WriteString("\n")
		sb.WriteString(r.noticeStyle.Render(view.Notice))
		sb.WriteString("\n")
	}
	if view.Body != "" {
		body, err := r.markdown(view.Body, r.width)
		if err != nil {
			body = view.Body
		}
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(body, "\n"))
		sb.WriteString("\n")
	}

	return sb.String()
}
