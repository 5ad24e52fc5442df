package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderHeader(t *testing.T) {
	state := HeaderViewState{
		InnerW:      60,
		Title:       "eclipse",
		Tabs:        []Tab{{Key: "1", Label: "Home", Active: true}, {Key: "2", Label: "Explore"}},
		TitleStyle:  lipgloss.NewStyle(),
		TabStyle:    lipgloss.NewStyle(),
		ActiveStyle: lipgloss.NewStyle(),
	}

	out := RenderHeader(state)
	if lipgloss.Height(out) != 1 {
		t.Fatalf("header height = %d, want 1", lipgloss.Height(out))
	}
	if w := lipgloss.Width(out); w != 60 {
		t.Errorf("header width = %d, want 60", w)
	}
	if got := ansi.Strip(out); !strings.HasPrefix(got, "eclipse 1 Home 2 Explore") {
		t.Errorf("header = %q", got)
	}
}

func TestRenderHeader_TruncatesTabs(t *testing.T) {
	state := HeaderViewState{
		InnerW:      10,
		Title:       "eclipse",
		Tabs:        []Tab{{Key: "1", Label: "Home"}, {Key: "2", Label: "Explore"}},
		TitleStyle:  lipgloss.NewStyle(),
		TabStyle:    lipgloss.NewStyle(),
		ActiveStyle: lipgloss.NewStyle(),
	}

	if w := lipgloss.Width(RenderHeader(state)); w > 10 {
		t.Errorf("header width = %d, want <= 10", w)
	}
}

func TestRenderFooter(t *testing.T) {
	tests := []struct {
		name       string
		footerH    int
		wantStatus bool
	}{
		{name: "full", footerH: 2, wantStatus: true},
		{name: "compact", footerH: 1, wantStatus: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := RenderFooter(FooterViewState{
				InnerW:     40,
				FooterH:    tc.footerH,
				StatusLine: "Followed Sally Rooney",
				HelpLine:   "q quit",
				VAlign:     lipgloss.Bottom,
			})
			stripped := ansi.Strip(out)
			if got := strings.Contains(stripped, "Followed"); got != tc.wantStatus {
				t.Errorf("status shown = %v, want %v", got, tc.wantStatus)
			}
			if !strings.Contains(stripped, "q quit") {
				t.Error("help line missing")
			}
			if lipgloss.Height(out) != tc.footerH {
				t.Errorf("height = %d, want %d", lipgloss.Height(out), tc.footerH)
			}
		})
	}
}

func TestRenderFooter_Hidden(t *testing.T) {
	if out := RenderFooter(FooterViewState{InnerW: 40}); out != "" {
		t.Errorf("expected empty footer, got %q", out)
	}
}

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\ncd\nef\ngh", 5, 3, lipgloss.Color("#000000"))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 5 {
			t.Errorf("line %d width = %d, want 5", i, w)
		}
	}
}

func TestRenderModalOverlay_ClampsTallSheet(t *testing.T) {
	base := strings.Repeat("..........\n", 4) + ".........."
	sheet := strings.Repeat("sheet\n", 9) + "sheet"

	out := RenderModalOverlay(base, sheet, 10, 5, lipgloss.Color("#101010"))
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		if got := ansi.Strip(line); !strings.Contains(got, "sheet") {
			t.Errorf("line %d = %q, want sheet content", i, got)
		}
	}
}
