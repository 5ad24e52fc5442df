package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eclipsereads/eclipse/internal/screen"
	"github.com/eclipsereads/eclipse/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.screen == nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case m.editing():
		return m.handleFieldKeys(msg)
	case m.screen.Nav().Active():
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleFocusKeys moves focus. It reports whether msg was consumed.
func (m *Model) handleFocusKeys(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab", "down":
		m.moveFocus(1)
	case "shift+tab", "up":
		m.moveFocus(-1)
	default:
		return false
	}
	return true
}

// handleFieldKeys feeds typing into the focused text field.
func (m Model) handleFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleFocusKeys(msg) {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		m.moveFocus(1)
		return m, nil
	case "esc":
		// Leave the field without changing it.
		m.input.Blur()
		if m.screen.Nav().Active() {
			cmd := m.dispatch(screen.Event{Kind: screen.EventDismiss})
			return m, cmd
		}
		m.moveFocus(1)
		return m, nil
	}

	target := m.focusedTarget()
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		changed := m.dispatch(screen.TextChanged(target, after))
		return m, tea.Batch(cmd, changed)
	}
	return m, cmd
}

// handleModalKeys handles keys while a sheet or pushed detail is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleFocusKeys(msg) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		cmd := m.dispatch(screen.Event{Kind: screen.EventDismiss})
		return m, cmd
	case "enter", " ":
		if target := m.focusedTarget(); target != "" {
			cmd := m.dispatch(screen.Tap(target))
			return m, cmd
		}
	case "y":
		return m, m.copyCmd()
	}
	return m, nil
}

// handleNormalKeys handles keys on the base screen.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleFocusKeys(msg) {
		return m, nil
	}

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "enter", " ":
		if target := m.focusedTarget(); target != "" {
			cmd := m.dispatch(screen.Tap(target))
			return m, cmd
		}
	case "right", "l":
		cmd := m.dispatch(screen.Event{Kind: screen.EventNext})
		return m, cmd
	case "left", "h":
		cmd := m.dispatch(screen.Event{Kind: screen.EventPrev})
		return m, cmd
	case "r":
		cmd := m.dispatch(screen.Event{Kind: screen.EventRefresh})
		return m, tea.Batch(cmd, commands.Status("Refreshed picks"))
	case "/":
		m.focusTarget(screen.TargetSearch)
	case "p":
		if tree, _ := m.visibleTree(); hasTarget(tree, screen.TargetProfile) {
			cmd := m.dispatch(screen.Tap(screen.TargetProfile))
			return m, cmd
		}
	case "esc", "backspace":
		cmd := m.apply(screen.Effect{Back: true})
		return m, cmd
	case "y":
		return m, m.copyCmd()
	default:
		for _, tab := range mainTabs {
			if tab.key == key {
				cmd := m.switchTab(tab.id)
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m Model) copyCmd() tea.Cmd {
	text := m.copyText()
	if text == "" {
		return commands.Status(errNothingToCopy.Error())
	}
	return commands.Copy(text, m.clipboard)
}

func hasTarget(tree screen.Node, target string) bool {
	_, ok := screen.Find(tree, target)
	return ok
}
