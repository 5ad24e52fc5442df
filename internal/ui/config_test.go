package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/nav"
)

func TestRunConfigInteractive(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTheme string
		wantStart nav.ScreenID
		wantRot   string
		wantOut   string
	}{
		{
			name:      "decline keeps defaults",
			input:     "n\n",
			wantTheme: "eclipse",
			wantStart: nav.ScreenOnboarding,
		},
		{
			name:      "edit all",
			input:     "y\nmocha\nhome\n30s\n\n",
			wantTheme: "mocha",
			wantStart: nav.ScreenHome,
			wantRot:   "30s",
			wantOut:   "Configuration saved!",
		},
		{
			name:      "retry invalid choices",
			input:     "yes\nneon\nlatte\nprofile\nexplore\n\n\n",
			wantTheme: "latte",
			wantStart: nav.ScreenExplore,
			wantOut:   `Invalid value "neon"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "eclipse", "config.toml")
			var out bytes.Buffer

			if err := runConfigInteractive(path, strings.NewReader(tc.input), &out); err != nil {
				t.Fatalf("unexpected error: %v\n%s", err, out.String())
			}
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("config file not created: %v", err)
			}

			cfg, err := config.LoadFrom(path)
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			if cfg.UI.Theme != tc.wantTheme {
				t.Errorf("theme = %q, want %q", cfg.UI.Theme, tc.wantTheme)
			}
			if cfg.StartScreen() != tc.wantStart {
				t.Errorf("start screen = %q, want %q", cfg.StartScreen(), tc.wantStart)
			}
			if cfg.UI.FeaturedRotate != tc.wantRot {
				t.Errorf("featured_rotate = %q, want %q", cfg.UI.FeaturedRotate, tc.wantRot)
			}
			if !cfg.UsesBuiltinCatalog() {
				t.Errorf("db_path = %q, want built-in", cfg.Catalog.DBPath)
			}
			if tc.wantOut != "" && !strings.Contains(out.String(), tc.wantOut) {
				t.Errorf("output missing %q:\n%s", tc.wantOut, out.String())
			}
		})
	}
}

func TestPrintConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.DBPath = "/tmp/books.db"

	var out bytes.Buffer
	printConfig(&out, cfg)

	for _, want := range []string{"[ui]", "theme            = eclipse", "start_screen     = onboarding", "db_path          = /tmp/books.db"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("printConfig missing %q:\n%s", want, out.String())
		}
	}
}
