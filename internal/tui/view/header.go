package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tab is one entry of the header tab bar.
type Tab struct {
	Key    string
	Label  string
	Active bool
}

// HeaderViewState holds what the header needs to draw itself.
type HeaderViewState struct {
	InnerW      int
	Title       string
	Tabs        []Tab
	TitleStyle  lipgloss.Style
	TabStyle    lipgloss.Style
	ActiveStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderHeader renders the app title followed by the tab bar on one line.
// Tabs that do not fit are cut at the right edge.
func RenderHeader(state HeaderViewState) string {
	parts := make([]string, 0, len(state.Tabs)+1)
	if state.Title != "" {
		parts = append(parts, state.TitleStyle.Render(state.Title))
	}
	for _, tab := range state.Tabs {
		style := state.TabStyle
		if tab.Active {
			style = state.ActiveStyle
		}
		parts = append(parts, style.Render(tab.Key+" "+tab.Label))
	}
	sep := lipgloss.NewStyle().Background(state.Bg).Render(" ")
	line := strings.Join(parts, sep)
	if state.InnerW > 0 && lipgloss.Width(line) > state.InnerW {
		line = ansi.Truncate(line, state.InnerW, "")
	}
	return PlaceBox(state.InnerW, 1, lipgloss.Top, line, state.Bg)
}
