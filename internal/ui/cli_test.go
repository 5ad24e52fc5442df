package ui

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/eclipsereads/eclipse/internal/config"
)

// firstRand always picks the next element in order, so samples are the prefix.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()

	prev := color.NoColor
	DisableColor()
	t.Cleanup(func() { color.NoColor = prev })
	t.Cleanup(func() { _ = a.Close() })

	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(io.Discard)
	a.root.SetArgs(args)
	err := a.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, NewApp(nil), "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "eclipse dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestBooks(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "all",
			args: []string{"books"},
			want: []string{"Books of the Day (12)", "The Hobbit [the_hobbit]", "Fahrenheit 451"},
		},
		{
			name:    "search",
			args:    []string{"books", "--search", "HOB"},
			want:    []string{"(1)", "The Hobbit"},
			notWant: []string{"Moby Dick"},
		},
		{
			name:    "recent",
			args:    []string{"books", "--recent"},
			want:    []string{"Recently Viewed (3)", "To Kill a Mockingbird"},
			notWant: []string{"The Hobbit"},
		},
		{
			name: "no match",
			args: []string{"books", "--search", "zzz"},
			want: []string{"(0)", "nothing matches"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, NewApp(config.Default()), tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestAuthorsAndRenters(t *testing.T) {
	out, err := execute(t, NewApp(nil), "authors", "--search", "austen")
	if err != nil {
		t.Fatalf("authors: %v", err)
	}
	if !strings.Contains(out, "Jane Austen") || strings.Contains(out, "Mark Twain") {
		t.Errorf("authors output:\n%s", out)
	}
	if !strings.Contains(out, "British landed gentry") {
		t.Errorf("authors output missing bio:\n%s", out)
	}

	out, err = execute(t, NewApp(nil), "renters")
	if err != nil {
		t.Fatalf("renters: %v", err)
	}
	if !strings.Contains(out, "Top Renters (4)") || !strings.Contains(out, "Diana Prince") {
		t.Errorf("renters output:\n%s", out)
	}
}

func TestFeatured(t *testing.T) {
	out, err := execute(t, NewApp(nil, WithRand(firstRand{})), "featured")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Featured Books (3)") {
		t.Errorf("expected three featured books:\n%s", out)
	}
	for _, title := range []string{"The Great Gatsby", "1984", "To Kill a Mockingbird"} {
		if !strings.Contains(out, title) {
			t.Errorf("featured missing %q:\n%s", title, out)
		}
	}

	out, err = execute(t, NewApp(nil, WithRand(firstRand{})), "featured", "--kind", "authors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "George Orwell") || strings.Contains(out, "Virginia Woolf") {
		t.Errorf("featured authors output:\n%s", out)
	}

	if _, err := execute(t, NewApp(nil), "featured", "--kind", "renters"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestCatalogSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	out, err := execute(t, NewApp(nil), "catalog", "seed", "--db", path)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out, "Seeded 15 books, 5 authors, 4 renters") {
		t.Errorf("seed output = %q", out)
	}

	cfg := config.Default()
	cfg.Catalog.DBPath = path
	out, err = execute(t, NewApp(cfg), "books", "--search", "odyssey")
	if err != nil {
		t.Fatalf("books from db: %v", err)
	}
	if !strings.Contains(out, "The Odyssey") {
		t.Errorf("seeded catalog missing book:\n%s", out)
	}
}

func TestMissingDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.DBPath = filepath.Join(t.TempDir(), "missing.db")

	_, err := execute(t, NewApp(cfg), "books")
	if err == nil {
		t.Fatal("expected error for missing database")
	}
	if !strings.Contains(err.Error(), "eclipse catalog seed") {
		t.Errorf("error should suggest seeding: %v", err)
	}
}
