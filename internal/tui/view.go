package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eclipsereads/eclipse/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	modal, showModal := m.renderModal()
	m.overlay.SetActive(showModal)

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	headerBox := m.placeBox(layout.InnerW, layout.HeaderH, lipgloss.Top, view.RenderHeader(m.headerViewState(layout)))
	bodyBox := m.placeBox(layout.InnerW, layout.BodyH, lipgloss.Top, m.renderBody(layout))
	footerBox := view.RenderFooter(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, headerBox, bodyBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	if h <= 0 {
		return ""
	}
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) headerViewState(layout LayoutCache) view.HeaderViewState {
	var tabs []view.Tab
	if m.inMainArea() {
		cur := m.stack.Current()
		tabs = make([]view.Tab, 0, len(mainTabs))
		for _, tab := range mainTabs {
			tabs = append(tabs, view.Tab{Key: tab.key, Label: tab.label, Active: tab.id == cur})
		}
	}
	return view.HeaderViewState{
		InnerW:      layout.InnerW,
		Title:       "eclipse",
		Tabs:        tabs,
		TitleStyle:  m.styles.TitleStyle,
		TabStyle:    m.styles.TabStyle,
		ActiveStyle: m.styles.TabActiveStyle,
		Bg:          m.styles.colorBg,
	}
}

// renderBody draws the base screen and scrolls it so the focused node stays visible.
func (m Model) renderBody(layout LayoutCache) string {
	if m.screen == nil {
		if m.err != nil {
			return m.styles.ErrorStyle.Render("Could not load the catalog. Press q to quit.")
		}
		return m.styles.HelpStyle.Render("Loading catalog...")
	}

	_, inModal := m.screen.Modal()
	focus, nth := "", 0
	if !inModal {
		focus, nth = m.focusedTarget(), m.focusOccurrence()
	}
	rendered := view.RenderNode(view.NodeView{
		Root:     m.screen.Compose(),
		Focus:    focus,
		FocusNth: nth,
		Width:    layout.InnerW,
		Input:    m.fieldInput(focus),
		Styles:   m.styles.Nodes,
	})
	return scrollTo(rendered.Content, rendered.FocusTop, layout.BodyH)
}

// fieldInput returns the live editor view when target is a text field.
func (m Model) fieldInput(target string) string {
	if target == "" || !m.editing() {
		return ""
	}
	return m.input.View()
}

func (m Model) footerViewState(layout LayoutCache) view.FooterViewState {
	statusStyle := layout.StatusAuxStyle
	if m.err != nil && m.statusMsg != "" {
		statusStyle = layout.ErrorAuxStyle
	}
	return view.FooterViewState{
		InnerW:     layout.InnerW,
		FooterH:    layout.FooterH,
		StatusLine: statusStyle.Render(m.statusMsgOrDefault()),
		HelpLine:   layout.HelpAuxStyle.Render(m.renderHelp()),
		VAlign:     lipgloss.Bottom,
		Bg:         m.styles.colorBg,
	}
}

// renderHelp returns the key hints for the current state.
func (m Model) renderHelp() string {
	switch {
	case m.screen == nil:
		return "q quit"
	case m.editing():
		return "type to edit · tab next field · enter next · ctrl+c quit"
	case m.screen.Nav().Active():
		return "tab focus · enter select · y copy · esc close"
	case m.inMainArea():
		return "1-4 tabs · tab focus · enter open · ←/→ swipe · / search · r refresh · q quit"
	default:
		return "tab focus · enter select · esc back · q quit"
	}
}

// scrollTo keeps at most height lines of content, starting early enough
// that the line at focusTop is shown.
func scrollTo(content string, focusTop, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	offset := 0
	if focusTop >= height-2 {
		offset = focusTop - height/3
	}
	offset = max(0, min(offset, len(lines)-height))
	return strings.Join(lines[offset:offset+height], "\n")
}
