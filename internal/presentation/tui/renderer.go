package tui

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column at which rendered content wraps.
const DefaultWordWrap = 80

// NewRenderer returns a function that renders node text as markdown using glamour.
// If the renderer cannot be created, content is returned unchanged.
func NewRenderer(wrap int) func(string) (string, error) {
	if wrap <= 0 {
		wrap = DefaultWordWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
