package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eclipsereads/eclipse/internal/screen"
	"github.com/eclipsereads/eclipse/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.input.Width = max(1, min(m.layoutCache.InnerW, 40)-4)
		return m, nil

	case commands.CatalogLoadedMsg:
		m.catalog = msg.Catalog
		m.loading = false
		m.err = nil
		m.open(m.stack.Current())
		return m, nil

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.setError(msg.Err)
		return m, commands.ClearStatusAfter(errorDuration)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, statusDuration)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.RotateMsg:
		// Keep rotating while a sheet is open but leave its content alone.
		if m.screen != nil && !m.screen.Nav().Active() {
			m.dispatch(screen.Event{Kind: screen.EventRefresh})
		}
		return m, commands.RotateAfter(m.rotate)

	case commands.CopiedMsg:
		if msg.Err != nil {
			LogError("copy", msg.Err)
			m.setError(fmt.Errorf("copy failed: %w", msg.Err))
			return m, commands.ClearStatusAfter(errorDuration)
		}
		m.setStatus("Copied: "+truncateStr(msg.Text, 40), statusDuration)
		return m, commands.ClearStatusAfter(statusDuration)
	}

	// Cursor blink and other component messages
	if m.editing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// errNothingToCopy is reported when y is pressed with nothing focused.
var errNothingToCopy = errors.New("nothing to copy")
