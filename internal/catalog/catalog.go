// Package catalog holds the read-only book, author and renter collections the app browses.
package catalog

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// Book is a catalog entry shown in feeds and carousels.
type Book struct {
	ID        uuid.UUID
	Title     string
	ImageName string // Opaque asset name, never interpreted
}

// Author is a writer shown on the explore and authors screens.
type Author struct {
	ID        uuid.UUID
	Name      string
	Bio       string
	ImageName string
}

// Renter is a community member renting books out.
type Renter struct {
	ID        uuid.UUID
	Name      string
	ImageName string
}

// CustomBook is a richly described book used by the swipe screen.
// It is not looked up by identifier.
type CustomBook struct {
	Title            string
	Author           string
	CoverImageName   string
	ShortDescription string
	LongDescription  string
	Genres           []string
}

// Preference is a selectable reading preference tag with its icon name.
type Preference struct {
	Tag  string
	Icon string
}

// Data is the raw material a Catalog is built from.
type Data struct {
	Books          []Book
	RecentlyViewed []Book
	FavoriteGenres []string
	TopRenters     []Renter
	Authors        []Author
	ExploreGenres  []string
	SwipeBooks     []CustomBook
	Preferences    []Preference
}

// Source loads a catalog once at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Catalog is an immutable snapshot of the app's content.
// Every accessor returns a copy, so callers cannot mutate shared state.
type Catalog struct {
	data Data
}

// New builds a catalog from data. The input is deep-copied.
func New(d Data) *Catalog {
	return &Catalog{data: cloneData(d)}
}

// Books returns the books of the day.
func (c *Catalog) Books() []Book {
	return slices.Clone(c.data.Books)
}

// RecentlyViewed returns the recently viewed books.
func (c *Catalog) RecentlyViewed() []Book {
	return slices.Clone(c.data.RecentlyViewed)
}

// FavoriteGenres returns the favourite genre labels shown on the home feed.
func (c *Catalog) FavoriteGenres() []string {
	return slices.Clone(c.data.FavoriteGenres)
}

// TopRenters returns the top renters.
func (c *Catalog) TopRenters() []Renter {
	return slices.Clone(c.data.TopRenters)
}

// Authors returns all authors.
func (c *Catalog) Authors() []Author {
	return slices.Clone(c.data.Authors)
}

// ExploreGenres returns the genre chips shown on the explore screen.
func (c *Catalog) ExploreGenres() []string {
	return slices.Clone(c.data.ExploreGenres)
}

// SwipeBooks returns the books offered on the swipe screen.
func (c *Catalog) SwipeBooks() []CustomBook {
	out := make([]CustomBook, len(c.data.SwipeBooks))
	for i, b := range c.data.SwipeBooks {
		out[i] = b.clone()
	}
	return out
}

// Preferences returns the closed set of preference tags.
func (c *Catalog) Preferences() []Preference {
	return slices.Clone(c.data.Preferences)
}

// Data returns a deep copy of the catalog contents.
func (c *Catalog) Data() Data {
	return cloneData(c.data)
}

// Names of the book lists.
const (
	ListBooksOfTheDay  = "Books of the Day"
	ListRecentlyViewed = "Recently Viewed"
)

func (c *Catalog) bookLists() []struct {
	name  string
	books []Book
} {
	return []struct {
		name  string
		books []Book
	}{
		{ListBooksOfTheDay, c.data.Books},
		{ListRecentlyViewed, c.data.RecentlyViewed},
	}
}

// Book looks up a book by ID across books of the day and recently viewed.
func (c *Catalog) Book(id uuid.UUID) (Book, bool) {
	for _, list := range c.bookLists() {
		for _, b := range list.books {
			if b.ID == id {
				return b, true
			}
		}
	}
	return Book{}, false
}

// Lists returns the names of the book lists holding id, in catalog order.
func (c *Catalog) Lists(id uuid.UUID) []string {
	var out []string
	for _, list := range c.bookLists() {
		if slices.ContainsFunc(list.books, func(b Book) bool { return b.ID == id }) {
			out = append(out, list.name)
		}
	}
	return out
}

// Author looks up an author by ID.
func (c *Catalog) Author(id uuid.UUID) (Author, bool) {
	for _, a := range c.data.Authors {
		if a.ID == id {
			return a, true
		}
	}
	return Author{}, false
}

// Empty reports whether the catalog has no browsable books.
func (c *Catalog) Empty() bool {
	return len(c.data.Books) == 0 && len(c.data.RecentlyViewed) == 0 && len(c.data.SwipeBooks) == 0
}

func (b CustomBook) clone() CustomBook {
	b.Genres = slices.Clone(b.Genres)
	return b
}

func cloneData(d Data) Data {
	out := Data{
		Books:          slices.Clone(d.Books),
		RecentlyViewed: slices.Clone(d.RecentlyViewed),
		FavoriteGenres: slices.Clone(d.FavoriteGenres),
		TopRenters:     slices.Clone(d.TopRenters),
		Authors:        slices.Clone(d.Authors),
		ExploreGenres:  slices.Clone(d.ExploreGenres),
		Preferences:    slices.Clone(d.Preferences),
	}
	if d.SwipeBooks != nil {
		out.SwipeBooks = make([]CustomBook, len(d.SwipeBooks))
		for i, b := range d.SwipeBooks {
			out.SwipeBooks[i] = b.clone()
		}
	}
	return out
}
