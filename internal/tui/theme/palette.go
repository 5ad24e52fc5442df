package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Chip        lipgloss.Color
	Card        lipgloss.Color
	Notice      lipgloss.Color
	Warning     lipgloss.Color

	CardBg      lipgloss.Color
	CardBgAlt   lipgloss.Color // Every other card in a row
	ChipBg      lipgloss.Color // Selected chip fill
	ChipIdleBg  lipgloss.Color // Unselected chip fill
	FocusBorder lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnChip    lipgloss.Color
	TextOnCard    lipgloss.Color
	TextOnWarning lipgloss.Color

	Sheet SheetColors
}

// SheetColors holds the sheet colors used for modals and pushed details.
type SheetColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// Fill shades: channel scale and the floor that keeps dark fills visible.
const (
	fillScale  = 0.50
	fillFloor  = 40.0 / 255
	idleScale  = 0.30
	idleFloor  = 30.0 / 255
	lightFill  = 0.75 // Blend toward bg on light themes
	lightIdle  = 0.88
	lightLimit = 0.55 // Luminance above which a bg counts as light
)

// NewPalette derives a Palette from t. A nil theme uses the default.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := isLight(t.Bg)
	cardBg := fill(t.Card, t.Bg, light)
	chipBg := fill(t.Chip, t.Bg, light)
	chipIdle := idle(t.Chip, t.Bg, light)

	sheet := t.Sheet
	backdrop := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Chip:        lipgloss.Color(t.Chip),
		Card:        lipgloss.Color(t.Card),
		Notice:      lipgloss.Color(t.Notice),
		Warning:     lipgloss.Color(t.Warning),

		CardBg:      lipgloss.Color(cardBg),
		CardBgAlt:   lipgloss.Color(alternate(cardBg, light)),
		ChipBg:      lipgloss.Color(chipBg),
		ChipIdleBg:  lipgloss.Color(chipIdle),
		FocusBorder: lipgloss.Color(coalesce(sheet.Border, t.Accent)),

		TextOnAccent:  lipgloss.Color(readableOn(t.Accent, t.Bg, t.Fg)),
		TextOnChip:    lipgloss.Color(readableOn(chipBg, t.Bg, t.Fg)),
		TextOnCard:    lipgloss.Color(readableOn(cardBg, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(readableOn(t.Warning, t.Bg, t.Fg)),

		Sheet: SheetColors{
			Bg:          lipgloss.Color(coalesce(sheet.Bg, t.BgHighlight, t.Bg)),
			Border:      same(coalesce(sheet.Border, t.Accent)),
			Text:        same(coalesce(sheet.Text, t.Fg)),
			Muted:       same(coalesce(sheet.Muted, t.FgMuted)),
			Highlight:   same(coalesce(sheet.Highlight, t.BgSelection, t.Accent)),
			Panel:       same(backdrop),
			ReverseText: lipgloss.AdaptiveColor{Dark: coalesce(sheet.Bg, t.Bg), Light: coalesce(sheet.Text, t.Fg)},
			Backdrop:    lipgloss.Color(backdrop),
		},
	}
}

func isLight(bg string) bool {
	return luminance(bg) > lightLimit
}

// fill is the background for selected chips and cards.
func fill(hex, bg string, light bool) string {
	if light {
		return blend(hex, bg, lightFill)
	}
	return scale(hex, fillScale, fillFloor)
}

// idle is the background for unselected chips.
func idle(hex, bg string, light bool) string {
	if light {
		return blend(hex, bg, lightIdle)
	}
	return scale(hex, idleScale, idleFloor)
}

// alternate shades every other card so neighbours stay distinct.
func alternate(hex string, light bool) string {
	if light {
		return blend(hex, "#000000", 0.10)
	}
	return blend(hex, "#ffffff", 0.30)
}

// scale multiplies every channel by f without dropping below floor.
// Values that are not hex colors are returned unchanged.
func scale(hex string, f, floor float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	ch := func(v float64) float64 { return max(v*f, floor) }
	return colorful.Color{R: ch(c.R), G: ch(c.G), B: ch(c.B)}.Clamped().Hex()
}

// blend mixes a toward b by t in RGB space.
func blend(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	t = min(max(t, 0), 1)
	return ca.BlendRgb(cb, t).Clamped().Hex()
}

func same(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

// readableOn picks whichever candidate contrasts more with bg.
func readableOn(bg, lightText, darkText string) string {
	if contrast(bg, lightText) >= contrast(bg, darkText) {
		return lightText
	}
	return darkText
}

// contrast is the WCAG contrast ratio of two colors.
func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

// luminance is the WCAG relative luminance. Invalid colors count as black.
func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
