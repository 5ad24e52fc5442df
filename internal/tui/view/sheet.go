package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SheetStyles are the styles of a detail sheet or modal.
type SheetStyles struct {
	Frame      lipgloss.Style // Border, background and outer width
	Header     lipgloss.Style
	Title      lipgloss.Style
	Body       lipgloss.Style
	Footer     lipgloss.Style
	Hint       lipgloss.Style
	HintActive lipgloss.Style
}

// RenderSheet frames body under a title with footer hints below.
// Titles wider than the sheet are cut with an ellipsis.
func RenderSheet(title, body, footer string, styles SheetStyles) string {
	if w := styles.Frame.GetWidth() - styles.Frame.GetHorizontalPadding() - styles.Header.GetHorizontalFrameSize(); w > 0 {
		title = ansi.Truncate(title, w, "…")
	}

	parts := []string{styles.Header.Render(styles.Title.Render(title))}
	if body != "" {
		parts = append(parts, body)
	}
	if footer != "" {
		parts = append(parts, styles.Footer.Render(footer))
	}
	return styles.Frame.Render(strings.Join(parts, "\n\n"))
}

// RenderHints joins key hints, highlighting the first one.
func RenderHints(styles SheetStyles, labels ...string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := styles.Hint
		if i == 0 {
			style = styles.HintActive
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, styles.Body.Render(" "))
}
