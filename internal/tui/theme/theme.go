// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "eclipse"

// Theme holds the colors of one TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Sections, subtle highlight
	BgSelection string `toml:"bg_selection"` // Focus, selection
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // Captions, placeholders
	Accent      string `toml:"accent"`   // Headings, buttons
	Chip        string `toml:"chip"`     // Selected chips
	Card        string `toml:"card"`     // Book and author cards
	Notice      string `toml:"notice"`   // Validation messages
	Warning     string `toml:"warning"`  // Status line

	Sheet Sheet `toml:"sheet"`
}

// Sheet holds the colors of detail sheets and the profile modal.
// Empty values fall back to the base theme when loaded.
type Sheet struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load reads a theme by name from the embedded files.
// Unknown names fall back to the default theme.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.fillSheet()

	return &t, nil
}

func (t *Theme) fillSheet() {
	s := &t.Sheet
	s.Bg = coalesce(s.Bg, t.BgHighlight, t.Bg)
	s.Border = coalesce(s.Border, t.Accent)
	s.Text = coalesce(s.Text, t.Fg)
	s.Muted = coalesce(s.Muted, t.FgMuted)
	s.Highlight = coalesce(s.Highlight, t.BgSelection, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the names of the built-in themes.
func Available() []string {
	return []string{"eclipse", "mocha", "latte"}
}

// IsAvailable reports whether a theme name is available, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
