package screen

import (
	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/state"
)

// Home is the main feed.
type Home struct {
	base
	search state.Search
}

// NewHome creates the home feed.
func NewHome(env Env) *Home {
	return &Home{base: newBase(nav.ScreenHome, "Home", env)}
}

// SearchText returns the current search text.
func (s *Home) SearchText() string {
	return s.search.Text()
}

func bookCards(books []catalog.Book) []Node {
	if len(books) == 0 {
		return []Node{noMatches()}
	}
	out := make([]Node, 0, len(books))
	for _, b := range books {
		out = append(out, Node{Kind: KindCard, Target: BookTarget(b.ID), Text: b.Title, Image: b.ImageName})
	}
	return out
}

func renterCards(renters []catalog.Renter) []Node {
	if len(renters) == 0 {
		return []Node{noMatches()}
	}
	out := make([]Node, 0, len(renters))
	for _, r := range renters {
		out = append(out, Node{Kind: KindCard, Text: r.Name, Image: r.ImageName})
	}
	return out
}

// Compose renders the feed, filtered by the search text.
func (s *Home) Compose() Node {
	q := s.search.Text()
	cat := s.env.Catalog

	genres := make([]Node, 0, len(cat.FavoriteGenres()))
	for _, g := range cat.FavoriteGenres() {
		genres = append(genres, Node{Kind: KindCard, Text: g, Image: g})
	}

	return column(
		row(
			field(TargetSearch, q, "Search...", false),
			button(TargetProfile, "Profile"),
		),
		section(catalog.ListBooksOfTheDay, "", row(bookCards(derive.Books(cat.Books(), q))...)),
		section("Your Favourites", "", row(genres...)),
		section(catalog.ListRecentlyViewed, "Check out the books you've recently viewed.",
			row(bookCards(derive.Books(cat.RecentlyViewed(), q))...)),
		section("Top Renters", "", row(renterCards(derive.Renters(cat.TopRenters(), q))...)),
	)
}

// Handle applies ev.
func (s *Home) Handle(ev Event) Effect {
	if eff, ok := s.handleModal(ev); ok {
		return eff
	}
	switch ev.Kind {
	case EventTextChanged:
		if ev.Target == TargetSearch {
			s.search.Set(ev.Value)
		}
	case EventTap:
		if ev.Target == TargetProfile {
			return s.presentProfile()
		}
		if id, ok := parseID(ev.Target, prefixBook); ok {
			if b, ok := s.env.Catalog.Book(id); ok {
				s.nav.Push(nav.ScreenBookDetail, s.bookDetail(b))
			}
		}
	}
	return Effect{}
}
