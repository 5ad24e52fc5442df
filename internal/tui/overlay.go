package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eclipsereads/eclipse/internal/tui/view"
)

// OverlayModel draws the active detail sheet centered over the screen.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content on top of base. It implements view.OverlayRenderer.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 || content == "" {
		return base
	}
	return view.RenderModalOverlay(base, content, width, height, o.bgColor)
}

var _ view.OverlayRenderer = OverlayModel{}
