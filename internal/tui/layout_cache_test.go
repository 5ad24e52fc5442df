package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/eclipsereads/eclipse/internal/tui/theme"
)

func TestBuildLayoutCache(t *testing.T) {
	th, err := theme.Load("eclipse")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	styles := NewStyles(th)
	m := Model{styles: styles}

	tests := []struct {
		name        string
		width       int
		height      int
		wantFooterH int
	}{
		{name: "roomy", width: 100, height: 40, wantFooterH: footerFull},
		{name: "short", width: 100, height: 8, wantFooterH: footerCompact},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout := m.buildLayoutCache(tc.width, tc.height)
			appH, appV := styles.AppStyle.GetFrameSize()

			if layout.InnerW != tc.width-appH {
				t.Errorf("InnerW = %d, want %d", layout.InnerW, tc.width-appH)
			}
			if layout.FooterH != tc.wantFooterH {
				t.Errorf("FooterH = %d, want %d", layout.FooterH, tc.wantFooterH)
			}
			if got := layout.HeaderH + layout.BodyH + layout.FooterH; got != tc.height-appV {
				t.Errorf("header+body+footer = %d, want %d", got, tc.height-appV)
			}
		})
	}
}

func TestBuildLayoutCache_AuxBackground(t *testing.T) {
	th, _ := theme.Load("latte")
	styles := NewStyles(th)
	m := Model{styles: styles}

	layout := m.buildLayoutCache(80, 24)
	bg, ok := layout.HelpAuxStyle.GetBackground().(lipgloss.Color)
	if !ok {
		t.Fatalf("HelpAuxStyle background type = %T, want lipgloss.Color", layout.HelpAuxStyle.GetBackground())
	}
	if bg != lipgloss.Color(th.Bg) {
		t.Fatalf("HelpAuxStyle background = %q, want %q", bg, th.Bg)
	}
}

func TestBuildLayoutCache_ZeroSize(t *testing.T) {
	th, _ := theme.Load("eclipse")
	m := Model{styles: NewStyles(th)}

	layout := m.buildLayoutCache(0, 0)
	if layout.InnerW != 0 || layout.InnerH != 0 || layout.BodyH != 0 {
		t.Fatalf("expected empty layout, got %+v", layout)
	}
}
