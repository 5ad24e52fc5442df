package tui

import "github.com/charmbracelet/lipgloss"

const (
	headerHeight  = 2 // Tab bar plus a spacer line
	footerFull    = 2 // Status and help
	footerCompact = 1 // Help only
	// Terminals shorter than this drop the status line.
	footerFullMinHeight = 12
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	BodyH   int
	FooterH int

	StatusAuxStyle lipgloss.Style
	ErrorAuxStyle  lipgloss.Style
	HelpAuxStyle   lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		footerH = footerFull
	}
	headerH := min(headerHeight, innerH)
	bodyH := max(0, innerH-headerH-footerH)

	aux := lipgloss.NewStyle().
		Width(innerW).
		MaxWidth(innerW).
		Background(styles.colorBg)

	return LayoutCache{
		InnerW:         innerW,
		InnerH:         innerH,
		HeaderH:        headerH,
		BodyH:          bodyH,
		FooterH:        footerH,
		StatusAuxStyle: styles.StatusStyle.Inherit(aux),
		ErrorAuxStyle:  styles.ErrorStyle.Inherit(aux),
		HelpAuxStyle:   styles.HelpStyle.Inherit(aux),
	}
}
