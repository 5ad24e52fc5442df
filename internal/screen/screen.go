package screen

import (
	"errors"
	"fmt"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/nav"
)

// ErrUnknownScreen is returned when routing to a screen that does not exist.
var ErrUnknownScreen = errors.New("unknown screen")

// Screen is one app screen instance. It owns its state exclusively.
type Screen interface {
	ID() nav.ScreenID
	Title() string
	// Compose renders the base screen. It does not change state.
	Compose() Node
	// Modal renders the active modal or pushed detail, if any.
	Modal() (Node, bool)
	// Handle applies one user-input event.
	Handle(ev Event) Effect
	Nav() *nav.Controller
}

// Env holds what every screen reads but never mutates.
type Env struct {
	Catalog *catalog.Catalog
	Rand    derive.Rand // nil uses the global source
}

// New creates a fresh instance of the screen identified by id.
func New(id nav.ScreenID, env Env) (Screen, error) {
	if env.Catalog == nil {
		env.Catalog = catalog.Default()
	}
	switch id {
	case nav.ScreenOnboarding:
		return NewOnboarding(env), nil
	case nav.ScreenLogin:
		return NewLogin(env), nil
	case nav.ScreenCreateAccount:
		return NewCreateAccount(env), nil
	case nav.ScreenPreferences:
		return NewPreferences(env), nil
	case nav.ScreenHome:
		return NewHome(env), nil
	case nav.ScreenExplore:
		return NewExplore(env), nil
	case nav.ScreenAuthors:
		return NewAuthors(env), nil
	case nav.ScreenSwipe:
		return NewSwipe(env), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, id)
	}
}

// base carries the pieces shared by every screen.
type base struct {
	id    nav.ScreenID
	title string
	env   Env
	nav   *nav.Controller
}

func newBase(id nav.ScreenID, title string, env Env) base {
	return base{id: id, title: title, env: env, nav: nav.NewController(id)}
}

func (b *base) ID() nav.ScreenID { return b.id }
func (b *base) Title() string { return b.title }
func (b *base) Nav() *nav.Controller { return b.nav }
func (b *base) Modal() (Node, bool) { return composeDestination(b.nav.State()) }

// handleModal consumes events aimed at the active destination.
// It reports false when nothing is presented and the screen should handle ev.
func (b *base) handleModal(ev Event) (Effect, bool) {
	if !b.nav.Active() {
		return Effect{}, false
	}

	switch ev.Kind {
	case EventDismiss:
		b.nav.Dismiss()
	case EventTap:
		switch ev.Target {
		case TargetDone:
			b.nav.Dismiss()
		case TargetLogout:
			b.nav.Dismiss()
			return Effect{Route: nav.ScreenLogin, Reset: true, Status: "Logged out"}, true
		default:
			if prefix, label := splitTarget(ev.Target); prefix == prefixRow {
				return Effect{Status: label + " is not available yet"}, true
			}
		}
	}
	return Effect{}, true
}

// presentProfile opens the profile sheet.
func (b *base) presentProfile() Effect {
	b.nav.Present(nav.ScreenProfile, nil)
	return Effect{}
}
