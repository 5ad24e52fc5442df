// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eclipsereads/eclipse/internal/catalog"
)

// CatalogLoadedMsg is sent when the catalog source has been read.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// RotateMsg asks the active screen to resample its featured rotation.
type RotateMsg struct{}

// CopiedMsg reports the result of a clipboard copy.
type CopiedMsg struct {
	Text string
	Err  error
}

// LoadCatalog reads the catalog from src.
func LoadCatalog(src catalog.Source) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return CatalogLoadedMsg{Catalog: catalog.Default()}
		}
		c, err := src.Load(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading catalog: %w", err)}
		}
		return CatalogLoadedMsg{Catalog: c}
	}
}

// Status shows msg on the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// RotateAfter schedules the next featured rotation. A non-positive d disables it.
func RotateAfter(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RotateMsg{}
	})
}

// Copy writes text to the clipboard using write.
func Copy(text string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: write(text)}
	}
}
