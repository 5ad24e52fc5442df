package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func plainSheet(width int) SheetStyles {
	s := lipgloss.NewStyle()
	return SheetStyles{
		Frame:      s.Width(width),
		Header:     s,
		Title:      s,
		Body:       s,
		Footer:     s,
		Hint:       s,
		HintActive: s,
	}
}

func TestRenderHints_UsesBodySeparator(t *testing.T) {
	styles := plainSheet(40)
	styles.Body = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	out := RenderHints(styles, "[Enter] Select", "[Esc] Close")
	if !strings.Contains(out, styles.Body.Render(" ")) {
		t.Fatal("expected hints to be separated with the body style")
	}
	if got := ansi.Strip(out); got != "[Enter] Select [Esc] Close" {
		t.Errorf("hints = %q", got)
	}
}

func TestRenderSheet(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		body   string
		footer string
		want   []string
	}{
		{
			name:  "title only",
			title: "Profile",
			want:  []string{"Profile"},
		},
		{
			name:   "body and footer",
			title:  "The Hobbit",
			body:   "[img: the_hobbit]",
			footer: "[Esc] Close",
			want:   []string{"The Hobbit", "", "[img: the_hobbit]", "", "[Esc] Close"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := RenderSheet(tc.title, tc.body, tc.footer, plainSheet(30))
			lines := strings.Split(ansi.Strip(out), "\n")
			if len(lines) != len(tc.want) {
				t.Fatalf("lines = %q, want %d lines", lines, len(tc.want))
			}
			for i, want := range tc.want {
				if strings.TrimRight(lines[i], " ") != want {
					t.Errorf("line %d = %q, want %q", i, lines[i], want)
				}
			}
		})
	}
}

func TestRenderSheet_TruncatesLongTitle(t *testing.T) {
	out := RenderSheet("The Seven Husbands of Evelyn Hugo", "body", "", plainSheet(20))
	first := strings.Split(out, "\n")[0]
	if !strings.Contains(first, "…") {
		t.Fatalf("expected ellipsis in title line, got %q", first)
	}
	if w := lipgloss.Width(first); w > 20 {
		t.Fatalf("title line width = %d, want <= 20", w)
	}
}
