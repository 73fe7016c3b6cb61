// Package tui renders styled terminal output for the unitx CLI
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Theme holds the styles bound to one output
type Theme struct {
	renderer *lipgloss.Renderer

	// Title styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Table styles
	Header lipgloss.Style
	Cell   lipgloss.Style
	Symbol lipgloss.Style
	Border lipgloss.Style

	// Message styles
	Error lipgloss.Style
	Help  lipgloss.Style
}

// NewTheme creates the styles for w. noColor forces plain ASCII output.
func NewTheme(w io.Writer, noColor bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		renderer: r,

		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),

		Subtitle: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),

		Header: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1),

		Cell: r.NewStyle().
			Padding(0, 1),

		Symbol: r.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1),

		Border: r.NewStyle().
			Foreground(colorMuted),

		Error: r.NewStyle().
			Foreground(colorError),

		Help: r.NewStyle().
			Foreground(colorMuted),
	}
}

// RenderTitle renders a section title
func (t *Theme) RenderTitle(title string) string {
	return t.Title.Render(title)
}

// RenderError renders an error message
func (t *Theme) RenderError(err string) string {
	return t.Error.Render("Error: " + err)
}

// RenderHelp renders a hint line
func (t *Theme) RenderHelp(help string) string {
	return t.Help.Render(help)
}
