// Package state holds the transient per-screen UI state: selections, search text,
// carousel position and form fields.
package state

import (
	"slices"
	"sort"
)

// Selection is a set of preference tags.
type Selection struct {
	tags map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{tags: make(map[string]struct{})}
}

// Toggle removes tag if present, inserts it otherwise.
// It returns whether tag is a member after the toggle.
func (s *Selection) Toggle(tag string) bool {
	if _, ok := s.tags[tag]; ok {
		delete(s.tags, tag)
		return false
	}
	s.tags[tag] = struct{}{}
	return true
}

// Contains reports whether tag is selected.
func (s *Selection) Contains(tag string) bool {
	if s == nil {
		return false
	}
	_, ok := s.tags[tag]
	return ok
}

// Len returns the number of selected tags. A nil selection is empty.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tags)
}

// Tags returns the selected tags in sorted order.
func (s *Selection) Tags() []string {
	out := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	clear(s.tags)
}

// Equal reports whether both selections hold the same tags.
func (s *Selection) Equal(other *Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for tag := range s.tags {
		if !other.Contains(tag) {
			return false
		}
	}
	return true
}

// Search holds free-text search input.
type Search struct {
	text string
}

// Set replaces the search text. Any value is accepted.
func (s *Search) Set(value string) {
	s.text = value
}

// Text returns the current search text.
func (s *Search) Text() string {
	return s.text
}

// Carousel tracks the currently displayed index over a collection of fixed size.
type Carousel struct {
	index int
	size  int
}

// NewCarousel returns a carousel positioned at the first of size items.
func NewCarousel(size int) Carousel {
	return Carousel{size: max(0, size)}
}

// Index returns the current position.
func (c Carousel) Index() int {
	return c.index
}

// Size returns the number of items.
func (c Carousel) Size() int {
	return c.size
}

// Valid reports whether Index points at an item.
func (c Carousel) Valid() bool {
	return c.size > 0
}

// Next advances one item, wrapping to the first.
func (c *Carousel) Next() {
	if c.size == 0 {
		return
	}
	c.index = (c.index + 1) % c.size
}

// Prev steps back one item, wrapping to the last.
func (c *Carousel) Prev() {
	if c.size == 0 {
		return
	}
	c.index = (c.index - 1 + c.size) % c.size
}

// Form is an ordered set of named text fields.
type Form struct {
	names  []string
	values map[string]string
}

// NewForm creates a form with the given field names, all empty.
func NewForm(names ...string) *Form {
	f := &Form{
		names:  slices.Clone(names),
		values: make(map[string]string, len(names)),
	}
	for _, n := range names {
		f.values[n] = ""
	}
	return f
}

// Set replaces a field value. Unknown fields are ignored.
func (f *Form) Set(name, value string) bool {
	if _, ok := f.values[name]; !ok {
		return false
	}
	f.values[name] = value
	return true
}

// Value returns a field value, or "" for unknown fields.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// Has reports whether the form declares the field.
func (f *Form) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	return slices.Clone(f.names)
}
