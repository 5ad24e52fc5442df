package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlaySetActive(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}

	overlay.SetActive(true)
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	got := overlay.Render(base, 10, 2, "content")
	if got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderCentersContent(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetBackground(lipgloss.Color("#0c0c0c"))
	overlay.SetActive(true)

	width := 30
	height := 12
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	content := "BOOK DETAIL"
	got := overlay.Render(base, width, height, content)

	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}

	mid := ansi.Strip(lines[(height-1)/2])
	if !strings.Contains(mid, content) {
		t.Fatalf("expected content on middle line, got %q", mid)
	}
	if !strings.HasPrefix(mid, "..") {
		t.Fatalf("expected base content left of the sheet, got %q", mid)
	}
	if ansi.Strip(lines[0]) != row {
		t.Fatalf("expected untouched first line, got %q", ansi.Strip(lines[0]))
	}
}
