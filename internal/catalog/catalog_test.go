package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestDefault_BuiltOnce(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Fatal("expected Default to return the same catalog instance")
	}
	if got := len(a.Books()); got != 12 {
		t.Errorf("books = %d, want 12", got)
	}
	if got := len(a.Preferences()); got != 10 {
		t.Errorf("preferences = %d, want 10", got)
	}
}

func TestDefault_IDsUnique(t *testing.T) {
	c := Default()
	seen := make(map[uuid.UUID]bool)
	for _, b := range append(c.Books(), c.RecentlyViewed()...) {
		if seen[b.ID] {
			t.Fatalf("duplicate book id %s", b.ID)
		}
		seen[b.ID] = true
		if b.Title == "" {
			t.Errorf("book %s has empty title", b.ID)
		}
	}
	for _, a := range c.Authors() {
		if seen[a.ID] {
			t.Fatalf("duplicate author id %s", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := New(MockData())

	books := c.Books()
	books[0].Title = "changed"
	if c.Books()[0].Title == "changed" {
		t.Error("Books exposed internal slice")
	}

	swipe := c.SwipeBooks()
	swipe[0].Genres[0] = "changed"
	if c.SwipeBooks()[0].Genres[0] == "changed" {
		t.Error("SwipeBooks exposed internal genres")
	}

	prefs := c.Preferences()
	prefs[0].Tag = "changed"
	if c.Preferences()[0].Tag == "changed" {
		t.Error("Preferences exposed internal slice")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	d := Data{Books: []Book{{ID: uuid.New(), Title: "1984"}}}
	c := New(d)
	d.Books[0].Title = "changed"
	if c.Books()[0].Title != "1984" {
		t.Error("New did not copy input data")
	}
}

func TestLookup(t *testing.T) {
	c := New(MockData())
	want := c.RecentlyViewed()[1]

	got, ok := c.Book(want.ID)
	if !ok {
		t.Fatal("expected recently viewed book to be found")
	}
	if got != want {
		t.Errorf("Book = %+v, want %+v", got, want)
	}

	if _, ok := c.Book(uuid.New()); ok {
		t.Error("expected unknown id to miss")
	}

	if got := c.Lists(want.ID); len(got) != 1 || got[0] != ListRecentlyViewed {
		t.Errorf("Lists(recent) = %v", got)
	}
	if got := c.Lists(c.Books()[0].ID); len(got) != 1 || got[0] != ListBooksOfTheDay {
		t.Errorf("Lists(book of the day) = %v", got)
	}
	if got := c.Lists(uuid.New()); len(got) != 0 {
		t.Errorf("Lists(unknown) = %v, want none", got)
	}

	a := c.Authors()[2]
	if got, ok := c.Author(a.ID); !ok || got.Name != "George Orwell" {
		t.Errorf("Author = %+v, %v", got, ok)
	}
}

func TestBuiltinSource(t *testing.T) {
	c, err := Builtin{}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c != Default() {
		t.Error("expected builtin source to serve the default catalog")
	}
	if c.Empty() {
		t.Error("expected default catalog to be non-empty")
	}
}
