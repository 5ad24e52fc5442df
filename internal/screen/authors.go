package screen

import (
	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/state"
)

// Authors lists authors the reader may like.
type Authors struct {
	base
	search    state.Search
	following *state.Selection // Followed author IDs
	picks     []catalog.Author
}

// NewAuthors creates the author browsing screen.
func NewAuthors(env Env) *Authors {
	s := &Authors{
		base:      newBase(nav.ScreenAuthors, "Authors", env),
		following: state.NewSelection(),
	}
	s.refresh()
	return s
}

// Picks returns the current "picked for you" rotation.
func (s *Authors) Picks() []catalog.Author {
	return append([]catalog.Author(nil), s.picks...)
}

// Following reports whether the reader follows the author.
func (s *Authors) Following(a catalog.Author) bool {
	return s.following.Contains(a.ID.String())
}

func (s *Authors) refresh() {
	s.picks = derive.Featured(s.env.Catalog.Authors(), s.env.Rand)
}

func (s *Authors) authorEntry(a catalog.Author) Node {
	label := "Follow"
	followed := s.Following(a)
	if followed {
		label = "Following"
	}
	return Node{
		Kind:   KindCard,
		Target: AuthorTarget(a.ID),
		Text:   a.Name,
		Detail: a.Bio,
		Image:  a.ImageName,
		Children: []Node{
			{Kind: KindButton, Target: FollowTarget(a.ID), Text: label, Selected: followed},
		},
	}
}

// Compose renders the filtered authors and the picks rotation.
func (s *Authors) Compose() Node {
	matches := derive.Authors(s.env.Catalog.Authors(), s.search.Text())

	list := make([]Node, 0, len(matches))
	for _, a := range matches {
		list = append(list, s.authorEntry(a))
	}
	if len(list) == 0 {
		list = append(list, noMatches())
	}

	picks := make([]Node, 0, len(s.picks))
	for _, a := range s.picks {
		picks = append(picks, s.authorEntry(a))
	}

	return column(
		field(TargetSearch, s.search.Text(), "Search authors...", false),
		text("These are the authors you may like."),
		section("Authors", "", list...),
		section("Picked for You", "", picks...),
	)
}

// Handle applies ev.
func (s *Authors) Handle(ev Event) Effect {
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
		if id, ok := parseID(ev.Target, prefixFollow); ok {
			a, ok := s.env.Catalog.Author(id)
			if !ok {
				return Effect{}
			}
			if s.following.Toggle(id.String()) {
				return Effect{Status: "Followed " + a.Name}
			}
			return Effect{Status: "Unfollowed " + a.Name}
		}
		if id, ok := parseID(ev.Target, prefixAuthor); ok {
			if a, ok := s.env.Catalog.Author(id); ok {
				s.nav.Push(nav.ScreenAuthorDetail, a)
			}
		}
	}
	return Effect{}
}
