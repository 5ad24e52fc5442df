package screen

import (
	"strings"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/nav"
)

// ProfileName is the signed-in reader shown on the profile sheet.
const ProfileName = "John Doe"

var (
	profileAccountRows = []string{"Edit Profile", "Notifications", "Book Support", "Security"}
	profileActionRows  = []string{"Report a Problem", "Add Account"}
)

// BookDetail is the payload of a book detail.
type BookDetail struct {
	catalog.Book
	From string // Lists carrying the book, joined for display
}

func (b *base) bookDetail(book catalog.Book) BookDetail {
	return BookDetail{Book: book, From: strings.Join(b.env.Catalog.Lists(book.ID), " · ")}
}

// composeDestination renders the content of a modal or pushed detail.
// The root node's Text is the destination title.
func composeDestination(s nav.State) (Node, bool) {
	if s.Kind == nav.Idle {
		return Node{}, false
	}

	switch s.Screen {
	case nav.ScreenProfile:
		return composeProfile(), true
	case nav.ScreenBookDetail:
		if b, ok := nav.PayloadAs[BookDetail](s); ok {
			return composeBookDetail(b), true
		}
	case nav.ScreenAuthorDetail:
		if a, ok := nav.PayloadAs[catalog.Author](s); ok {
			return composeAuthorDetail(a), true
		}
	case nav.ScreenCustomBookDetail:
		if b, ok := nav.PayloadAs[catalog.CustomBook](s); ok {
			return composeCustomBookDetail(b), true
		}
	case nav.ScreenQuiz:
		return composeQuiz(), true
	}
	return Node{}, false
}

func destination(title string, children ...Node) Node {
	children = append(children, button(TargetDone, "Done"))
	return Node{Kind: KindColumn, Text: title, Children: children}
}

func composeProfile() Node {
	account := make([]Node, 0, len(profileAccountRows))
	for _, label := range profileAccountRows {
		account = append(account, button(target(prefixRow, label), label))
	}
	actions := make([]Node, 0, len(profileActionRows)+1)
	for _, label := range profileActionRows {
		actions = append(actions, button(target(prefixRow, label), label))
	}
	actions = append(actions, button(TargetLogout, "Log Out"))

	return destination("Profile",
		image("userpic"),
		heading(ProfileName),
		section("Account", "", account...),
		section("Actions", "", actions...),
	)
}

func composeBookDetail(b BookDetail) Node {
	children := []Node{image(b.ImageName), heading(b.Title)}
	if b.From != "" {
		children = append(children, caption("From "+b.From))
	}
	return destination(b.Title, children...)
}

func composeAuthorDetail(a catalog.Author) Node {
	return destination(a.Name,
		image(a.ImageName),
		heading(a.Name),
		text(a.Bio),
	)
}

func composeCustomBookDetail(b catalog.CustomBook) Node {
	return destination(b.Title,
		image(b.CoverImageName),
		heading(b.Title),
		caption("by "+b.Author),
		text(b.LongDescription),
	)
}

func composeQuiz() Node {
	return destination("Book Quiz",
		text("Quiz goes here"),
	)
}
