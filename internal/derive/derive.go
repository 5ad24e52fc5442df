// Package derive computes what screens display from the catalog and screen state.
// Everything here is a pure function of its inputs, except Sample, which consumes randomness.
package derive

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/state"
)

// FeaturedSize is the number of items in a featured rotation.
const FeaturedSize = 3

// Filter returns the items whose display field contains query, ignoring case.
// An empty query returns every item in its original order.
// The result is never nil.
func Filter[T any](items []T, query string, field func(T) string) []T {
	out := make([]T, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	fold := cases.Fold()
	needle := fold.String(query)
	for _, item := range items {
		if strings.Contains(fold.String(field(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Books filters books by title.
func Books(books []catalog.Book, query string) []catalog.Book {
	return Filter(books, query, func(b catalog.Book) string { return b.Title })
}

// Authors filters authors by name.
func Authors(authors []catalog.Author, query string) []catalog.Author {
	return Filter(authors, query, func(a catalog.Author) string { return a.Name })
}

// Renters filters renters by name.
func Renters(renters []catalog.Renter, query string) []catalog.Renter {
	return Filter(renters, query, func(r catalog.Renter) string { return r.Name })
}

// CustomBooks filters swipe books by title or author.
func CustomBooks(books []catalog.CustomBook, query string) []catalog.CustomBook {
	return Filter(books, query, func(b catalog.CustomBook) string { return b.Title + "\n" + b.Author })
}

// Chip is a preference tag with its highlight state.
type Chip struct {
	Tag      string
	Icon     string
	Selected bool
}

// Chips marks each preference as selected or not.
func Chips(prefs []catalog.Preference, sel *state.Selection) []Chip {
	out := make([]Chip, len(prefs))
	for i, p := range prefs {
		out[i] = Chip{Tag: p.Tag, Icon: p.Icon, Selected: sel != nil && sel.Contains(p.Tag)}
	}
	return out
}

// Rand is the randomness Sample needs. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Sample picks n distinct elements of src in random order.
// When src holds fewer than n elements all of them are returned, shuffled.
// src is not modified. A nil rng uses the global source.
func Sample[T any](src []T, n int, rng Rand) []T {
	if rng == nil {
		rng = globalRand{}
	}
	n = min(n, len(src))
	if n <= 0 {
		return []T{}
	}

	idx := make([]int, len(src))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: only the first n positions are settled.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = src[idx[i]]
	}
	return out
}

// Featured samples a featured rotation of FeaturedSize elements.
func Featured[T any](src []T, rng Rand) []T {
	return Sample(src, FeaturedSize, rng)
}
