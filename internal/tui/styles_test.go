package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/eclipsereads/eclipse/internal/tui/theme"
)

func TestStylesBackgroundCoverage(t *testing.T) {
	for _, name := range theme.Available() {
		t.Run(name, func(t *testing.T) {
			th, err := theme.Load(name)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", name, err)
			}
			styles := NewStyles(th)

			assertBg := func(t *testing.T, label string, style lipgloss.Style, want string) {
				t.Helper()
				bg, ok := style.GetBackground().(lipgloss.Color)
				if !ok {
					t.Fatalf("%s background type = %T, want lipgloss.Color", label, style.GetBackground())
				}
				if bg != lipgloss.Color(want) {
					t.Fatalf("%s background = %q, want %q", label, bg, want)
				}
			}

			assertBg(t, "AppStyle", styles.AppStyle, th.Bg)
			assertBg(t, "HelpStyle", styles.HelpStyle, th.Bg)
			assertBg(t, "Nodes.Text", styles.Nodes.Text, th.Bg)
			assertBg(t, "Nodes.SectionTitle", styles.Nodes.SectionTitle, th.Bg)
			assertBg(t, "SheetNodes.Text", styles.SheetNodes.Text, string(styles.SheetBg))
			assertBg(t, "TabActiveStyle", styles.TabActiveStyle, th.Accent)
		})
	}
}

func TestStylesFocusStandsOut(t *testing.T) {
	th, _ := theme.Load(theme.DefaultName)
	styles := NewStyles(th)

	if styles.Nodes.ChipFocused.GetBackground() == styles.Nodes.Chip.GetBackground() {
		t.Error("focused chip should not share the idle chip background")
	}
	if styles.Nodes.ButtonFocused.GetBackground() == styles.Nodes.Button.GetBackground() {
		t.Error("focused button should not share the idle button background")
	}
	if styles.Nodes.CardFocused.GetBorderTopForeground() == styles.Nodes.Card.GetBorderTopForeground() {
		t.Error("focused card border should differ from the idle border")
	}
}
