// Package tui provides the terminal user interface for eclipse.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/screen"
	"github.com/eclipsereads/eclipse/internal/tui/commands"
	"github.com/eclipsereads/eclipse/internal/tui/theme"
)

// mainTabs are the screens reachable from the tab bar once signed in.
var mainTabs = []struct {
	key   string
	id    nav.ScreenID
	label string
}{
	{"1", nav.ScreenHome, "Home"},
	{"2", nav.ScreenExplore, "Explore"},
	{"3", nav.ScreenAuthors, "Authors"},
	{"4", nav.ScreenSwipe, "Swipe"},
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	source  catalog.Source
	config  *config.Config
	catalog *catalog.Catalog
	rand    derive.Rand

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Navigation
	stack  *nav.Stack
	screen screen.Screen
	focus  int // Index into the focusable targets of the visible tree

	// Components
	input   textinput.Model // Editor bound to the focused field
	overlay OverlayModel

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	rotate    time.Duration
	loading   bool
	clipboard func(string) error

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithCatalog starts the model with an already loaded catalog.
func WithCatalog(c *catalog.Catalog) ModelOption {
	return func(m *Model) {
		m.catalog = c
		m.loading = false
	}
}

// WithSource sets where the catalog is loaded from.
func WithSource(src catalog.Source) ModelOption {
	return func(m *Model) {
		m.source = src
	}
}

// WithRand sets the random source used for featured rotations.
func WithRand(r derive.Rand) ModelOption {
	return func(m *Model) {
		m.rand = r
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.clipboard = write
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.TextStyle = styles.InputTextStyle
	ti.Cursor.Style = styles.InputCursorStyle

	rotate, _ := cfg.RotateInterval()

	m := &Model{
		config:    cfg,
		theme:     t,
		styles:    styles,
		stack:     nav.NewStack(cfg.StartScreen()),
		input:     ti,
		overlay:   NewOverlayModel(),
		rotate:    rotate,
		loading:   true,
		clipboard: clipboard.WriteAll,
	}
	m.overlay.SetBackground(styles.SheetBackdrop)

	for _, opt := range opts {
		opt(m)
	}

	m.layoutCache = m.buildLayoutCache(0, 0)
	if !m.loading {
		m.open(m.stack.Current())
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	rotate := commands.RotateAfter(m.rotate)
	if !m.loading {
		return rotate
	}
	return tea.Batch(commands.LoadCatalog(m.source), rotate)
}

// Screen returns the active screen, or nil while the catalog loads.
func (m Model) Screen() screen.Screen {
	return m.screen
}

// Routes returns the route stack bottom to top.
func (m Model) Routes() []nav.ScreenID {
	return m.stack.Routes()
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	src, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeSource() }()

	model := New(cfg, WithSource(src))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
