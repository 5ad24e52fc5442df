package db

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eclipsereads/eclipse/internal/catalog"
)

func TestOpenSource(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		src, closeFn, err := OpenSource("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = closeFn() }()
		if _, ok := src.(catalog.Builtin); !ok {
			t.Errorf("source = %T, want catalog.Builtin", src)
		}
	})

	t.Run("missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.db")
		_, closeFn, err := OpenSource(path)
		if err == nil {
			t.Fatal("expected error for missing database")
		}
		if closeFn == nil {
			t.Fatal("close func must never be nil")
		}
		if !strings.Contains(err.Error(), "catalog seed") {
			t.Errorf("error should point at catalog seed: %v", err)
		}
	})

	t.Run("seeded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.db")
		repo, err := New(path)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := repo.Seed(context.Background(), catalog.New(catalog.MockData())); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		_ = repo.Close()

		src, closeFn, err := OpenSource(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = closeFn() }()

		c, err := src.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(c.Books()) != 12 {
			t.Errorf("books = %d, want 12", len(c.Books()))
		}
	})
}
