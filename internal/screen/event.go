package screen

import (
	"strings"

	"github.com/google/uuid"

	"github.com/eclipsereads/eclipse/internal/nav"
)

// EventKind is the type of a user-input event.
type EventKind int

const (
	EventTap EventKind = iota
	EventTextChanged
	EventNext
	EventPrev
	EventRefresh // Screen appeared or the user asked for a new rotation
	EventDismiss
)

func (k EventKind) String() string {
	switch k {
	case EventTap:
		return "tap"
	case EventTextChanged:
		return "text_changed"
	case EventNext:
		return "next"
	case EventPrev:
		return "prev"
	case EventRefresh:
		return "refresh"
	case EventDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// Event is a discrete user action delivered to a screen.
type Event struct {
	Kind   EventKind
	Target string
	Value  string // New text for EventTextChanged
}

// Tap builds a tap event.
func Tap(target string) Event {
	return Event{Kind: EventTap, Target: target}
}

// TextChanged builds a text-change event.
func TextChanged(target, value string) Event {
	return Event{Kind: EventTextChanged, Target: target, Value: value}
}

// Effect is what a screen asks of the host after handling an event.
type Effect struct {
	Route  nav.ScreenID // Navigate to this screen when non-empty
	Reset  bool         // Make Route the new root instead of pushing it
	Back   bool         // Pop the current route, or follow Route when it is the root
	Status string       // Transient message for the status line
}

// Target names.
const (
	TargetSearch     = "search"
	TargetProfile    = "profile"
	TargetDone       = "done"
	TargetLogout     = "logout"
	TargetBack       = "back"
	TargetNext       = "next"
	TargetPrev       = "prev"
	TargetSwipeCard  = "swipe-card"
	TargetGetStarted = "get-started"
	TargetLogin      = "login"
	TargetCreate     = "create-account"
	TargetStart      = "start-reading"
	TargetQuiz       = "start-quiz"
)

// Target prefixes for entity targets.
const (
	prefixBook   = "book"
	prefixAuthor = "author"
	prefixFollow = "follow"
	prefixPref   = "pref"
	prefixGenre  = "genre"
	prefixField  = "field"
	prefixRow    = "row"
	prefixTeaser = "teaser"
	targetSep    = ":"
)

func target(prefix, value string) string {
	return prefix + targetSep + value
}

// splitTarget splits "prefix:value". Targets without a separator return an empty value.
func splitTarget(t string) (string, string) {
	prefix, value, _ := strings.Cut(t, targetSep)
	return prefix, value
}

// BookTarget is the tap target of a book card.
func BookTarget(id uuid.UUID) string { return target(prefixBook, id.String()) }

// AuthorTarget is the tap target of an author card.
func AuthorTarget(id uuid.UUID) string { return target(prefixAuthor, id.String()) }

// FollowTarget is the tap target of an author's follow button.
func FollowTarget(id uuid.UUID) string { return target(prefixFollow, id.String()) }

// PreferenceTarget is the tap target of a preference chip.
func PreferenceTarget(tag string) string { return target(prefixPref, tag) }

// GenreTarget is the tap target of an explore genre chip.
func GenreTarget(genre string) string { return target(prefixGenre, genre) }

// FieldTarget is the target of a form field.
func FieldTarget(name string) string { return target(prefixField, name) }

// TeaserTarget is the tap target of a featured book on the explore swipe teaser.
func TeaserTarget(id uuid.UUID) string { return target(prefixTeaser, id.String()) }

// IsField reports whether t addresses a text field. The search box counts as a field.
func IsField(t string) bool {
	if t == TargetSearch {
		return true
	}
	prefix, _ := splitTarget(t)
	return prefix == prefixField
}

func parseID(t, wantPrefix string) (uuid.UUID, bool) {
	prefix, value := splitTarget(t)
	if prefix != wantPrefix {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
