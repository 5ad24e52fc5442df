package derive

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/state"
)

func twoBooks() []catalog.Book {
	return []catalog.Book{
		{ID: uuid.New(), Title: "1984"},
		{ID: uuid.New(), Title: "Brave New World"},
	}
}

func TestBooks_Scenario(t *testing.T) {
	books := twoBooks()

	tests := []struct {
		name  string
		query string
		want  []catalog.Book
	}{
		{name: "exact_title", query: "1984", want: books[:1]},
		{name: "empty", query: "", want: books},
		{name: "no_match", query: "zz", want: []catalog.Book{}},
		{name: "case_insensitive", query: "bRaVe", want: books[1:]},
		{name: "substring", query: "new w", want: books[1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Books(books, tt.query)
			if got == nil {
				t.Fatal("expected non-nil result")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].ID != tt.want[i].ID {
					t.Errorf("result[%d] = %q, want %q", i, got[i].Title, tt.want[i].Title)
				}
			}
		})
	}
}

func TestFilter_OnlyMatchesAndOrder(t *testing.T) {
	books := catalog.New(catalog.MockData()).Books()
	queries := []string{"the", "THE", "o", "an", "451", "dorian", "x"}

	for _, q := range queries {
		got := Books(books, q)
		lower := strings.ToLower(q)

		// Every result matches.
		for _, b := range got {
			if !strings.Contains(strings.ToLower(b.Title), lower) {
				t.Errorf("query %q returned non-matching %q", q, b.Title)
			}
		}

		// Every match is returned, in source order.
		j := 0
		for _, b := range books {
			if !strings.Contains(strings.ToLower(b.Title), lower) {
				continue
			}
			if j >= len(got) || got[j].ID != b.ID {
				t.Fatalf("query %q: missing or out of order %q", q, b.Title)
			}
			j++
		}
	}
}

func TestFilter_EmptyQueryKeepsOrder(t *testing.T) {
	authors := catalog.New(catalog.MockData()).Authors()
	got := Authors(authors, "")
	if len(got) != len(authors) {
		t.Fatalf("len = %d, want %d", len(got), len(authors))
	}
	for i := range authors {
		if got[i].ID != authors[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestFilter_UnicodeFolding(t *testing.T) {
	renters := []catalog.Renter{{Name: "STRASSE Books"}, {Name: "Émile Zola"}}
	if got := Renters(renters, "strasse"); len(got) != 1 {
		t.Errorf("expected folded match, got %v", got)
	}
	if got := Renters(renters, "émile"); len(got) != 1 {
		t.Errorf("expected accented match, got %v", got)
	}
}

func TestCustomBooks_MatchesTitleOrAuthor(t *testing.T) {
	books := catalog.New(catalog.MockData()).SwipeBooks()
	if got := CustomBooks(books, "parker"); len(got) != 1 || got[0].Title != "Ocean's Whisper" {
		t.Errorf("author match = %v", got)
	}
	if got := CustomBooks(books, "stardust"); len(got) != 1 {
		t.Errorf("title match = %v", got)
	}
}

func TestChips(t *testing.T) {
	prefs := []catalog.Preference{{Tag: "Horror"}, {Tag: "Romance"}, {Tag: "Sci-Fi"}}
	sel := state.NewSelection()
	sel.Toggle("Romance")

	chips := Chips(prefs, sel)
	if len(chips) != 3 {
		t.Fatalf("chips = %d, want 3", len(chips))
	}
	for _, c := range chips {
		if c.Selected != (c.Tag == "Romance") {
			t.Errorf("chip %s selected = %v", c.Tag, c.Selected)
		}
	}

	for _, c := range Chips(prefs, nil) {
		if c.Selected {
			t.Errorf("nil selection should select nothing, got %s", c.Tag)
		}
	}
}

func TestSample_Cardinality(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name string
		size int
		n    int
		want int
	}{
		{name: "large_pool", size: 12, n: 3, want: 3},
		{name: "exact_pool", size: 3, n: 3, want: 3},
		{name: "short_pool", size: 2, n: 3, want: 2},
		{name: "single", size: 1, n: 3, want: 1},
		{name: "empty_pool", size: 0, n: 3, want: 0},
		{name: "zero_n", size: 5, n: 0, want: 0},
		{name: "negative_n", size: 5, n: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := make([]int, tt.size)
			for i := range src {
				src[i] = i * 10
			}
			for trial := 0; trial < 50; trial++ {
				got := Sample(src, tt.n, rng)
				if len(got) != tt.want {
					t.Fatalf("len = %d, want %d", len(got), tt.want)
				}
				seen := make(map[int]bool)
				for _, v := range got {
					if seen[v] {
						t.Fatalf("duplicate %d in %v", v, got)
					}
					seen[v] = true
					if v%10 != 0 || v < 0 || v >= tt.size*10 {
						t.Fatalf("%d is not a member of the source", v)
					}
				}
			}
			for i := range src {
				if src[i] != i*10 {
					t.Fatal("Sample modified its source")
				}
			}
		})
	}
}

func TestFeatured_NilRand(t *testing.T) {
	authors := catalog.New(catalog.MockData()).Authors()
	got := Featured(authors, nil)
	if len(got) != FeaturedSize {
		t.Fatalf("len = %d, want %d", len(got), FeaturedSize)
	}
	ids := make(map[uuid.UUID]bool)
	for _, a := range got {
		ids[a.ID] = true
	}
	if len(ids) != FeaturedSize {
		t.Fatalf("expected %d distinct authors, got %d", FeaturedSize, len(ids))
	}
}

func TestSample_CoversWholePool(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	src := []string{"a", "b", "c", "d", "e"}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		for _, v := range Sample(src, 3, rng) {
			seen[v] = true
		}
	}
	if len(seen) != len(src) {
		t.Fatalf("expected every element to be sampled eventually, saw %v", seen)
	}
}
