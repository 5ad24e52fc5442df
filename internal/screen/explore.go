package screen

import (
	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/state"
)

// Explore is the discovery screen.
type Explore struct {
	base
	search   state.Search
	genre    string // Highlighted genre chip, empty for none
	featured []catalog.Book
}

// NewExplore creates the discovery screen with an initial featured rotation.
func NewExplore(env Env) *Explore {
	s := &Explore{base: newBase(nav.ScreenExplore, "Explore", env)}
	s.refresh()
	return s
}

// Featured returns the books in the current swipe teaser.
func (s *Explore) Featured() []catalog.Book {
	return append([]catalog.Book(nil), s.featured...)
}

// Genre returns the highlighted genre.
func (s *Explore) Genre() string {
	return s.genre
}

func (s *Explore) refresh() {
	s.featured = derive.Featured(s.env.Catalog.Books(), s.env.Rand)
}

func authorCards(authors []catalog.Author) []Node {
	if len(authors) == 0 {
		return []Node{noMatches()}
	}
	out := make([]Node, 0, len(authors))
	for _, a := range authors {
		out = append(out, Node{Kind: KindCard, Target: AuthorTarget(a.ID), Text: a.Name, Image: a.ImageName})
	}
	return out
}

// Compose renders the discovery sections.
func (s *Explore) Compose() Node {
	q := s.search.Text()
	cat := s.env.Catalog
	books := derive.Books(cat.Books(), q)

	genres := make([]Node, 0, len(cat.ExploreGenres()))
	for _, g := range cat.ExploreGenres() {
		genres = append(genres, Node{Kind: KindChip, Target: GenreTarget(g), Text: g, Selected: g == s.genre})
	}

	teaser := make([]Node, 0, len(s.featured))
	for _, b := range s.featured {
		teaser = append(teaser, Node{Kind: KindCard, Target: TeaserTarget(b.ID), Text: b.Title, Image: b.ImageName})
	}
	if len(teaser) == 0 {
		teaser = append(teaser, caption("Nothing to swipe yet"))
	}

	return column(
		heading("Discover"),
		field(TargetSearch, q, "Search Books...", false),
		section("New Releases 📖", "Discover the latest additions to our collection.", row(bookCards(books)...)),
		section("Browse Genres", "", row(genres...)),
		section("Swipe to Find the Perfect Book", "Swipe through books and find your perfect match. ❤️", row(teaser...)),
		section("Featured Authors ✍🏽", "", row(authorCards(cat.Authors())...)),
		section("From Book to the Screen 🎬", "Spoiler Alert: The Book is ALWAYS better.", row(bookCards(books)...)),
		section("Not Sure What Book to Read?", "Take a quick quiz to get personalized recommendations!",
			button(TargetQuiz, "Start Quiz")),
		section("Best Sellers 📚", "Discover the best-selling books in the app.", row(bookCards(books)...)),
		section("Booker Prize 2024 🏆", "Explore the nominees and winners.", row(bookCards(books)...)),
	)
}

// Handle applies ev.
func (s *Explore) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	switch ev.Kind {
	case EventRefresh:
		s.refresh()
	case EventTextChanged:
		if ev.Target == TargetSearch {
			s.search.Set(ev.Value)
		}
	case EventTap:
		return s.tap(ev.Target)
	}
	return Effect{}
}

func (s *Explore) tap(t string) Effect {
	if t == TargetQuiz {
		s.nav.Push(nav.ScreenQuiz, nil)
		return Effect{}
	}

	prefix, value := splitTarget(t)
	switch prefix {
	case prefixGenre:
		if s.genre == value {
			s.genre = ""
		} else {
			s.genre = value
		}
	case prefixTeaser:
		return Effect{Route: nav.ScreenSwipe}
	case prefixBook:
		if id, ok := parseID(t, prefixBook); ok {
			if b, ok := s.env.Catalog.Book(id); ok {
				s.nav.Push(nav.ScreenBookDetail, s.bookDetail(b))
			}
		}
	case prefixAuthor:
		if id, ok := parseID(t, prefixAuthor); ok {
			if a, ok := s.env.Catalog.Author(id); ok {
				s.nav.Push(nav.ScreenAuthorDetail, a)
			}
		}
	}
	return Effect{}
}
