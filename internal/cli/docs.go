package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders manifest documentation for the terminal using
// glamour, auto-detecting the light/dark background.
func RenderMarkdown(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
