package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eclipsereads/eclipse/internal/tui/theme"
	"github.com/eclipsereads/eclipse/internal/tui/view"
)

// modalWidth is the outer width of detail sheets.
const modalWidth = 56

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorNotice      lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent  lipgloss.Color
	colorTextOnWarning lipgloss.Color

	// Header
	TitleStyle     lipgloss.Style
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	// Screen body
	Nodes view.NodeStyles

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Detail sheets and the profile modal
	Sheet         view.SheetStyles
	SheetBg       lipgloss.Color
	SheetBackdrop lipgloss.Color
	SheetNodes    view.NodeStyles

	// Search and form input
	InputTextStyle   lipgloss.Style
	InputCursorStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorNotice = palette.Notice
	s.colorWarning = palette.Warning
	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnWarning = palette.TextOnWarning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		PaddingRight(1)

	s.TabStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight).
		Padding(0, 1)

	s.TabActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.Nodes = nodeStyles(palette, s.colorBg, s.colorFg, s.colorFgMuted)

	// Status message
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	// Help text
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Sheets use the theme's [sheet] colors
	sheet := palette.Sheet
	s.SheetBg = sheet.Bg
	s.SheetBackdrop = sheet.Backdrop
	s.Sheet = sheetStyles(sheet)
	s.SheetNodes = modalNodeStyles(palette)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.InputCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	return s
}

func sheetStyles(c theme.SheetColors) view.SheetStyles {
	text := lipgloss.NewStyle().Foreground(c.Text).Background(c.Bg)
	return view.SheetStyles{
		Frame: text.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(1, 1).
			Width(modalWidth - 2).
			Align(lipgloss.Left),
		Header:     text.Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Title:      text.Bold(true),
		Body:       text,
		Footer:     lipgloss.NewStyle().Background(c.Bg).Padding(0, 1),
		Hint:       lipgloss.NewStyle().Background(c.Panel).Foreground(c.Text).Padding(0, 3),
		HintActive: lipgloss.NewStyle().Background(c.Highlight).Foreground(c.ReverseText).Padding(0, 3).Underline(true),
	}
}

func nodeStyles(p *theme.Palette, bg, fg, muted lipgloss.Color) view.NodeStyles {
	plain := lipgloss.NewStyle().Background(bg)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BgSelection).
		BorderBackground(bg).
		Background(p.CardBg).
		Foreground(p.TextOnCard).
		Padding(0, 1)

	return view.NodeStyles{
		Heading:        plain.Foreground(p.Accent).Bold(true),
		Text:           plain.Foreground(fg),
		Caption:        plain.Foreground(muted).Italic(true),
		Notice:         plain.Foreground(p.Notice).Bold(true),
		SectionTitle:   plain.Foreground(fg).Bold(true),
		SectionCaption: plain.Foreground(muted),
		Card:           card,
		CardAlt:        card.Background(p.CardBgAlt),
		CardFocused:    card.BorderForeground(p.FocusBorder).Bold(true),
		CardTitle:      lipgloss.NewStyle().Bold(true),
		CardDetail:     lipgloss.NewStyle().Faint(true),
		Chip:           lipgloss.NewStyle().Background(p.ChipIdleBg).Foreground(fg).Padding(0, 1),
		ChipSelected:   lipgloss.NewStyle().Background(p.ChipBg).Foreground(p.TextOnChip).Bold(true).Padding(0, 1),
		ChipFocused:    lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Bold(true).Padding(0, 1),
		Button:         lipgloss.NewStyle().Background(p.BgHighlight).Foreground(fg).Padding(0, 2),
		ButtonSelected: lipgloss.NewStyle().Background(p.ChipBg).Foreground(p.TextOnChip).Padding(0, 2),
		ButtonFocused:  lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Bold(true).Underline(true).Padding(0, 2),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			BorderBackground(bg).
			Background(bg).
			Foreground(fg).
			Padding(0, 1),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.FocusBorder).
			BorderBackground(bg).
			Background(p.BgSelection).
			Foreground(fg).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Foreground(muted),
		Image:       plain.Foreground(muted),
	}
}

func modalNodeStyles(p *theme.Palette) view.NodeStyles {
	m := p.Sheet
	ns := nodeStyles(p, m.Bg, p.Fg, p.FgMuted)
	plain := lipgloss.NewStyle().Background(m.Bg)
	ns.Heading = plain.Foreground(m.Text).Bold(true)
	ns.Text = plain.Foreground(m.Text)
	ns.Caption = plain.Foreground(m.Muted).Italic(true)
	ns.SectionTitle = plain.Foreground(m.Text).Bold(true)
	ns.SectionCaption = plain.Foreground(m.Muted)
	ns.Image = plain.Foreground(m.Muted)
	ns.Button = lipgloss.NewStyle().Background(m.Panel).Foreground(m.Text).Padding(0, 2)
	ns.ButtonFocused = lipgloss.NewStyle().Background(m.Highlight).Foreground(m.ReverseText).Bold(true).Underline(true).Padding(0, 2)
	return ns
}
