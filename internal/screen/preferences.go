package screen

import (
	"strings"

	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/state"
)

// Preferences lets the reader pick the genres they like.
type Preferences struct {
	base
	selection *state.Selection
}

// NewPreferences creates the preference selection screen.
func NewPreferences(env Env) *Preferences {
	return &Preferences{
		base:      newBase(nav.ScreenPreferences, "Preferences", env),
		selection: state.NewSelection(),
	}
}

// Selection returns the chosen tags.
func (s *Preferences) Selection() []string {
	return s.selection.Tags()
}

// Compose renders the preference chips.
func (s *Preferences) Compose() Node {
	chips := derive.Chips(s.env.Catalog.Preferences(), s.selection)
	grid := make([]Node, 0, len(chips))
	for _, c := range chips {
		grid = append(grid, Node{
			Kind:     KindChip,
			Target:   PreferenceTarget(c.Tag),
			Text:     c.Tag,
			Image:    c.Icon,
			Selected: c.Selected,
		})
	}
	return column(
		heading("Select Your Preferences!"),
		row(grid...),
		button(TargetStart, "Start Reading"),
	)
}

// Handle applies ev.
func (s *Preferences) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	if ev.Kind != EventTap {
		return Effect{}
	}
	if ev.Target == TargetStart {
		status := "No preferences selected"
		if s.selection.Len() > 0 {
			status = "Selected preferences: " + strings.Join(s.selection.Tags(), ", ")
		}
		return Effect{Route: nav.ScreenHome, Reset: true, Status: status}
	}
	if prefix, tag := splitTarget(ev.Target); prefix == prefixPref && s.known(tag) {
		s.selection.Toggle(tag)
	}
	return Effect{}
}

func (s *Preferences) known(tag string) bool {
	for _, p := range s.env.Catalog.Preferences() {
		if p.Tag == tag {
			return true
		}
	}
	return false
}
