package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/screen"
	"github.com/eclipsereads/eclipse/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// open replaces the active screen with a fresh instance of id.
func (m *Model) open(id nav.ScreenID) {
	s, err := screen.New(id, screen.Env{Catalog: m.catalog, Rand: m.rand})
	if err != nil {
		LogError("open", err)
		m.setError(err)
		return
	}
	// Appear: screens resample their rotations each time they are shown.
	s.Handle(screen.Event{Kind: screen.EventRefresh})
	m.screen = s
	m.focus = 0
	m.syncInput()
}

// apply carries out what a screen asked for after an event.
func (m *Model) apply(eff screen.Effect) tea.Cmd {
	from := m.stack.Current()
	switch {
	case eff.Back:
		if m.stack.Pop() {
			m.open(m.stack.Current())
		} else if eff.Route != "" {
			m.stack.Push(eff.Route)
			m.open(eff.Route)
		}
	case eff.Route != "":
		if eff.Reset {
			m.stack.Reset(eff.Route)
		} else {
			m.stack.Push(eff.Route)
		}
		m.open(eff.Route)
	}
	if to := m.stack.Current(); to != from || eff.Route != "" {
		LogRouteChange(from, to, m.stack.Routes())
	}

	if eff.Status != "" {
		return commands.Status(eff.Status)
	}
	return nil
}

// dispatch delivers ev to the active screen and applies the result.
func (m *Model) dispatch(ev screen.Event) tea.Cmd {
	if m.screen == nil {
		return nil
	}
	owner := m.screen.ID()
	before := m.screen.Nav().State()
	LogEvent(owner, ev)

	eff := m.screen.Handle(ev)

	if m.screen.ID() == owner {
		if after := m.screen.Nav().State(); after.String() != before.String() {
			LogModalChange(owner, before, after)
			m.focus = 0
		}
	}
	cmd := m.apply(eff)
	m.clampFocus()
	m.syncInput()
	return cmd
}

// switchTab makes id the new root when it is one of the main tabs.
func (m *Model) switchTab(id nav.ScreenID) tea.Cmd {
	if m.screen == nil || !m.inMainArea() || m.stack.Current() == id {
		return nil
	}
	return m.apply(screen.Effect{Route: id, Reset: true})
}

// inMainArea reports whether the active route is one of the main tabs.
func (m Model) inMainArea() bool {
	cur := m.stack.Current()
	for _, tab := range mainTabs {
		if tab.id == cur {
			return true
		}
	}
	return false
}

// visibleTree returns the tree that receives input: the active modal if any,
// otherwise the base screen.
func (m Model) visibleTree() (screen.Node, bool) {
	if m.screen == nil {
		return screen.Node{}, false
	}
	if node, ok := m.screen.Modal(); ok {
		return node, true
	}
	return m.screen.Compose(), false
}

func (m Model) targets() []screen.Node {
	if m.screen == nil {
		return nil
	}
	tree, _ := m.visibleTree()
	return screen.Targets(tree)
}

// focusedNode returns the node under the focus cursor.
func (m Model) focusedNode() (screen.Node, bool) {
	targets := m.targets()
	if m.focus < 0 || m.focus >= len(targets) {
		return screen.Node{}, false
	}
	return targets[m.focus], true
}

func (m Model) focusedTarget() string {
	if n, ok := m.focusedNode(); ok {
		return n.Target
	}
	return ""
}

// focusOccurrence counts earlier targets equal to the focused one, so the
// renderer can tell repeated entries apart.
func (m Model) focusOccurrence() int {
	targets := m.targets()
	if m.focus < 0 || m.focus >= len(targets) {
		return 0
	}
	nth := 0
	for _, n := range targets[:m.focus] {
		if n.Target == targets[m.focus].Target {
			nth++
		}
	}
	return nth
}

// moveFocus steps the focus cursor by delta, wrapping around.
func (m *Model) moveFocus(delta int) {
	n := len(m.targets())
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.syncInput()
	LogFocus(m.focus, m.focusedTarget(), "move")
}

// focusTarget moves the focus cursor to target if it is visible.
func (m *Model) focusTarget(target string) bool {
	for i, n := range m.targets() {
		if n.Target == target {
			m.focus = i
			m.syncInput()
			LogFocus(i, target, "jump")
			return true
		}
	}
	return false
}

func (m *Model) clampFocus() {
	n := len(m.targets())
	if m.focus >= n {
		m.focus = max(0, n-1)
	}
}

// editing reports whether the focused node is a text field.
func (m Model) editing() bool {
	n, ok := m.focusedNode()
	return ok && n.Kind == screen.KindField
}

// syncInput binds the text input to the focused field.
func (m *Model) syncInput() {
	n, ok := m.focusedNode()
	if !ok || n.Kind != screen.KindField {
		m.input.Blur()
		return
	}
	if m.input.Value() != n.Text {
		m.input.SetValue(n.Text)
		m.input.CursorEnd()
	}
	m.input.Placeholder = n.Placeholder
	if n.Masked {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
	m.input.Focus()
}

// copyText returns what y copies: the open sheet's title or the focused node's text.
func (m Model) copyText() string {
	if m.screen == nil {
		return ""
	}
	if node, ok := m.screen.Modal(); ok {
		return node.Text
	}
	if n, ok := m.focusedNode(); ok && n.Kind != screen.KindField {
		return n.Text
	}
	return ""
}

func (m *Model) setStatus(msg string, d time.Duration) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(d)
}

func (m *Model) setError(err error) {
	m.err = err
	m.setStatus(fmt.Sprintf("Error: %v", err), errorDuration)
}

// statusMsgOrDefault returns the status line text.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.loading {
		return "Loading catalog..."
	}
	if m.screen != nil {
		return m.screen.Title()
	}
	return ""
}
