package integration

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/db"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/screen"
	"github.com/eclipsereads/eclipse/internal/tui"
	"github.com/eclipsereads/eclipse/internal/tui/commands"
)

// seededCatalog writes the mock catalog to a fresh database and loads it back
// through the same source the app opens.
func seededCatalog(t *testing.T) (*catalog.Catalog, string) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	repo, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	if err := repo.Seed(ctx, catalog.New(catalog.MockData())); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("failed to close repo: %v", err)
	}

	src, closeSource, err := db.OpenSource(path)
	if err != nil {
		t.Fatalf("failed to open source: %v", err)
	}
	t.Cleanup(func() { _ = closeSource() })

	c, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	return c, path
}

func seededEnv(t *testing.T) screen.Env {
	t.Helper()
	c, _ := seededCatalog(t)
	return screen.Env{Catalog: c, Rand: rand.New(rand.NewPCG(7, 11))}
}

func TestEveryRouteComposesFromSeededCatalog(t *testing.T) {
	env := seededEnv(t)

	for _, id := range nav.Routes() {
		t.Run(string(id), func(t *testing.T) {
			s, err := screen.New(id, env)
			if err != nil {
				t.Fatalf("New(%q): %v", id, err)
			}
			s.Handle(screen.Event{Kind: screen.EventRefresh})
			if texts := screen.Texts(s.Compose()); len(texts) == 0 {
				t.Error("screen composed no text")
			}
		})
	}
}

func TestBookDetailUsesSeededIdentifiers(t *testing.T) {
	env := seededEnv(t)
	home := screen.NewHome(env)

	b := env.Catalog.Books()[10]
	home.Handle(screen.Tap(screen.BookTarget(b.ID)))

	m, ok := home.Modal()
	if !ok {
		t.Fatal("book detail did not open")
	}
	if m.Text != "The Hobbit" {
		t.Errorf("detail title = %q, want The Hobbit", m.Text)
	}

	home.Handle(screen.Event{Kind: screen.EventDismiss})
	if home.Nav().Active() {
		t.Error("dismiss left the detail open")
	}
}

func TestSearchOverSeededCatalog(t *testing.T) {
	env := seededEnv(t)
	authors := screen.NewAuthors(env)

	authors.Handle(screen.TextChanged(screen.TargetSearch, "TWAIN"))
	if texts := screen.Texts(authors.Compose()); !slices.Contains(texts, "Mark Twain") {
		t.Errorf("search for twain missing Mark Twain: %v", texts)
	}

	authors.Handle(screen.TextChanged(screen.TargetSearch, "nobody"))
	if texts := screen.Texts(authors.Compose()); !slices.Contains(texts, "No matches") {
		t.Errorf("search for nobody should report no matches: %v", texts)
	}
}

func TestSwipeWalksSeededStack(t *testing.T) {
	env := seededEnv(t)
	swipe := screen.NewSwipe(env)

	var seen []string
	for range env.Catalog.SwipeBooks() {
		b, ok := swipe.Current()
		if !ok {
			t.Fatal("swipe stack ran out early")
		}
		seen = append(seen, b.Title)
		swipe.Handle(screen.Event{Kind: screen.EventNext})
	}

	want := []string{"The Enchanted Library", "Ocean's Whisper", "Stardust Dreams"}
	if !slices.Equal(seen, want) {
		t.Errorf("swipe order = %v, want %v", seen, want)
	}
}

func TestAppRunsAgainstSeededDatabase(t *testing.T) {
	_, path := seededCatalog(t)

	cfg := config.Default()
	cfg.UI.StartScreen = string(nav.ScreenHome)
	cfg.Catalog.DBPath = path

	src, closeSource, err := db.OpenSource(path)
	if err != nil {
		t.Fatalf("failed to open source: %v", err)
	}
	defer func() { _ = closeSource() }()

	var m tea.Model = tui.New(cfg, tui.WithSource(src))
	for _, msg := range []tea.Msg{
		tea.WindowSizeMsg{Width: 100, Height: 40},
		commands.LoadCatalog(src)(),
	} {
		m, _ = m.Update(msg)
	}

	out := ansi.Strip(m.View())
	for _, want := range []string{"Books of the Day", "The Great Gatsby"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
