package screen

import (
	"fmt"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/state"
)

// Swipe shows one book at a time for the reader to match with.
type Swipe struct {
	base
	books    []catalog.CustomBook
	carousel state.Carousel
}

// NewSwipe creates the swipe screen positioned at the first book.
func NewSwipe(env Env) *Swipe {
	books := env.Catalog.SwipeBooks()
	return &Swipe{
		base:     newBase(nav.ScreenSwipe, "Find Your Book Match", env),
		books:    books,
		carousel: state.NewCarousel(len(books)),
	}
}

// Index returns the position of the displayed book.
func (s *Swipe) Index() int {
	return s.carousel.Index()
}

// Current returns the displayed book.
func (s *Swipe) Current() (catalog.CustomBook, bool) {
	if !s.carousel.Valid() {
		return catalog.CustomBook{}, false
	}
	return s.books[s.carousel.Index()], true
}

// Compose renders the current card.
func (s *Swipe) Compose() Node {
	header := row(
		button(TargetBack, "Back"),
		heading("Find Your Book Match"),
		button(TargetProfile, "Profile"),
	)

	b, ok := s.Current()
	if !ok {
		return column(header, caption("No books to swipe"))
	}

	genres := make([]Node, 0, len(b.Genres))
	for _, g := range b.Genres {
		genres = append(genres, Node{Kind: KindChip, Text: g})
	}

	card := Node{
		Kind:   KindCard,
		Target: TargetSwipeCard,
		Text:   b.Title,
		Detail: "by " + b.Author,
		Image:  b.CoverImageName,
		Children: []Node{
			text(b.ShortDescription),
			row(genres...),
		},
	}

	return column(
		header,
		card,
		row(
			button(TargetPrev, "< Prev"),
			caption(fmt.Sprintf("%d/%d", s.carousel.Index()+1, s.carousel.Size())),
			button(TargetNext, "Next >"),
		),
	)
}

// Handle applies ev.
func (s *Swipe) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	switch ev.Kind {
	case EventNext:
		s.carousel.Next()
	case EventPrev:
		s.carousel.Prev()
	case EventTap:
		switch ev.Target {
		case TargetNext:
			s.carousel.Next()
		case TargetPrev:
			s.carousel.Prev()
		case TargetBack:
			return Effect{Back: true}
		case TargetProfile:
			return s.presentProfile()
		case TargetSwipeCard:
			if b, ok := s.Current(); ok {
				s.nav.Present(nav.ScreenCustomBookDetail, b)
			}
		}
	}
	return Effect{}
}
