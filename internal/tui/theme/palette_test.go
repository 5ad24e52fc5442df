package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Chip:        "#112233",
		Card:        "#445566",
		Notice:      "#777777",
		Warning:     "#888888",
	}
}

func TestNewPalette_FillShades(t *testing.T) {
	base := darkTheme()
	palette := NewPalette(base)

	if want := scale(base.Card, fillScale, fillFloor); palette.CardBg != lipgloss.Color(want) {
		t.Errorf("CardBg = %q, want %q", palette.CardBg, want)
	}
	if want := scale(base.Chip, idleScale, idleFloor); palette.ChipIdleBg != lipgloss.Color(want) {
		t.Errorf("ChipIdleBg = %q, want %q", palette.ChipIdleBg, want)
	}
	if palette.CardBgAlt == palette.CardBg {
		t.Error("alternate card shade should differ from the card fill")
	}
	if luminance(string(palette.CardBg)) >= luminance(base.Card) {
		t.Error("dark themes should darken card fills")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{name: "halves channels", hex: "#c8c8c8", want: "#646464"},
		{name: "floor keeps dark fills visible", hex: "#000000", want: "#282828"},
		{name: "invalid unchanged", hex: "teal", want: "teal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scale(tc.hex, fillScale, fillFloor); got != tc.want {
				t.Errorf("scale(%q) = %q, want %q", tc.hex, got, tc.want)
			}
		})
	}
}

func TestNewPalette_SheetFallbacks(t *testing.T) {
	base := darkTheme()

	palette := NewPalette(base)
	if palette.Sheet.Bg != lipgloss.Color(base.BgHighlight) {
		t.Errorf("Sheet.Bg = %q, want %q", palette.Sheet.Bg, base.BgHighlight)
	}
	if palette.Sheet.Border.Dark != base.Accent {
		t.Errorf("Sheet.Border.Dark = %q, want %q", palette.Sheet.Border.Dark, base.Accent)
	}
	if palette.Sheet.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Errorf("Sheet.Backdrop = %q, want %q", palette.Sheet.Backdrop, base.BgSelection)
	}
	if palette.FocusBorder != lipgloss.Color(base.Accent) {
		t.Errorf("FocusBorder = %q, want %q", palette.FocusBorder, base.Accent)
	}

	base.Sheet.Border = "#00ff00"
	if got := NewPalette(base).FocusBorder; got != lipgloss.Color("#00ff00") {
		t.Errorf("FocusBorder = %q, want sheet border", got)
	}
}

func TestNewPalette_LightThemeLightensFills(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Chip:        "#1d8a8a",
		Card:        "#2f8f2f",
		Notice:      "#c97b00",
		Warning:     "#c2410c",
	}

	palette := NewPalette(base)
	if luminance(string(palette.ChipBg)) <= luminance(base.Chip) {
		t.Errorf("ChipBg luminance = %f, want greater than Chip", luminance(string(palette.ChipBg)))
	}
	if luminance(string(palette.CardBg)) <= luminance(base.Card) {
		t.Errorf("CardBg luminance = %f, want greater than Card", luminance(string(palette.CardBg)))
	}
}

func TestNewPalette_NilUsesDefault(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Accent != lipgloss.Color("#005c78") {
		t.Fatalf("Accent = %q, want eclipse accent", palette.Accent)
	}
}

func TestReadableOn(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{bg: "#f0f0f0", want: "#111111"},
		{bg: "#0e1a1f", want: "#ffffff"},
	}

	for _, tc := range tests {
		t.Run(tc.bg, func(t *testing.T) {
			if got := readableOn(tc.bg, "#ffffff", "#111111"); got != tc.want {
				t.Errorf("readableOn(%q) = %q, want %q", tc.bg, got, tc.want)
			}
		})
	}
}
