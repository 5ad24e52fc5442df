// Package nav tracks which screen or modal is active.
package nav

import "fmt"

// ScreenID identifies a screen or modal destination.
type ScreenID string

const (
	ScreenOnboarding    ScreenID = "onboarding"
	ScreenLogin         ScreenID = "login"
	ScreenCreateAccount ScreenID = "create_account"
	ScreenPreferences   ScreenID = "preferences"
	ScreenHome          ScreenID = "home"
	ScreenExplore       ScreenID = "explore"
	ScreenAuthors       ScreenID = "authors"
	ScreenSwipe         ScreenID = "swipe"

	// Destinations that only appear as modals or pushed details.
	ScreenProfile          ScreenID = "profile"
	ScreenBookDetail       ScreenID = "book_detail"
	ScreenAuthorDetail     ScreenID = "author_detail"
	ScreenCustomBookDetail ScreenID = "custom_book_detail"
	ScreenQuiz             ScreenID = "quiz"
)

// Routes lists the screens that can be routed to at app level.
func Routes() []ScreenID {
	return []ScreenID{
		ScreenOnboarding, ScreenLogin, ScreenCreateAccount, ScreenPreferences,
		ScreenHome, ScreenExplore, ScreenAuthors, ScreenSwipe,
	}
}

// IsRoute reports whether id is an app-level screen.
func IsRoute(id ScreenID) bool {
	for _, r := range Routes() {
		if r == id {
			return true
		}
	}
	return false
}

// Kind is the presentation state of a screen.
type Kind int

const (
	Idle Kind = iota
	ModalPresented
	PushedDetail
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case ModalPresented:
		return "modal"
	case PushedDetail:
		return "pushed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is a screen's current presentation.
type State struct {
	Kind    Kind
	Screen  ScreenID // Empty when Idle
	Payload any      // Selected entity carried by the destination, if any
}

func (s State) String() string {
	if s.Kind == Idle {
		return "idle"
	}
	return s.Kind.String() + ":" + string(s.Screen)
}

// PayloadAs returns the payload as T.
func PayloadAs[T any](s State) (T, bool) {
	v, ok := s.Payload.(T)
	return v, ok
}

// Controller is the presentation state machine owned by one screen instance.
// At most one modal or pushed detail is active at a time.
type Controller struct {
	owner ScreenID
	state State
}

// NewController returns an idle controller for the owning screen.
func NewController(owner ScreenID) *Controller {
	return &Controller{owner: owner}
}

// Owner returns the screen that owns this controller.
func (c *Controller) Owner() ScreenID {
	return c.owner
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Active reports whether a modal or detail is shown.
func (c *Controller) Active() bool {
	return c.state.Kind != Idle
}

// Present shows screen as a modal. Opening while not idle is ignored.
func (c *Controller) Present(screen ScreenID, payload any) bool {
	return c.open(ModalPresented, screen, payload)
}

// Push shows screen as a pushed detail. Opening while not idle is ignored.
func (c *Controller) Push(screen ScreenID, payload any) bool {
	return c.open(PushedDetail, screen, payload)
}

func (c *Controller) open(kind Kind, screen ScreenID, payload any) bool {
	if c.state.Kind != Idle {
		return false
	}
	c.state = State{Kind: kind, Screen: screen, Payload: payload}
	return true
}

// Dismiss returns to Idle. It reports whether anything was dismissed.
func (c *Controller) Dismiss() bool {
	if c.state.Kind == Idle {
		return false
	}
	c.state = State{}
	return true
}
