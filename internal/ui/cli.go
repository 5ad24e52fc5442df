// Package ui provides the eclipse command line interface.
package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/db"
	"github.com/eclipsereads/eclipse/internal/derive"
	"github.com/eclipsereads/eclipse/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	rand    derive.Rand
	closers []func() error
}

// Option configures an App.
type Option func(*App)

// WithRand sets the random source for featured samples.
func WithRand(r derive.Rand) Option {
	return func(a *App) {
		a.rand = r
	}
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "eclipse",
		Short: "Discover books, authors and readers near you",
		Long: `Eclipse is a terminal book discovery app.

Run it without arguments to browse the catalog interactively,
or use the subcommands to query it from scripts.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.booksCmd())
	a.root.AddCommand(a.authorsCmd())
	a.root.AddCommand(a.rentersCmd())
	a.root.AddCommand(a.featuredCmd())
	a.root.AddCommand(a.catalogCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eclipse %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases anything the executed command opened.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// loadCatalog reads the configured catalog. The source stays open until Close.
func (a *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	src, closeSource, err := db.OpenSource(a.config.Catalog.DBPath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeSource)

	c, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}
