package tui

import (
	"github.com/eclipsereads/eclipse/internal/tui/view"
)

// renderModal renders the active screen's sheet or pushed detail.
func (m Model) renderModal() (string, bool) {
	if m.screen == nil {
		return "", false
	}
	node, ok := m.screen.Modal()
	if !ok {
		return "", false
	}

	frameW, _ := m.styles.Sheet.Frame.GetFrameSize()
	bodyW := modalWidth - frameW
	rendered := view.RenderNode(view.NodeView{
		Root:     node,
		Focus:    m.focusedTarget(),
		FocusNth: m.focusOccurrence(),
		Width:    bodyW,
		Images:   true,
		Styles:   m.styles.SheetNodes,
	})

	// Title, footer and frame take about eight lines.
	maxBody := max(3, m.height-8)
	body := scrollTo(rendered.Content, rendered.FocusTop, maxBody)
	footer := view.RenderHints(m.styles.Sheet, "[Enter] Select", "[Esc] Close")
	return view.RenderSheet(node.Text, body, footer, m.styles.Sheet), true
}
