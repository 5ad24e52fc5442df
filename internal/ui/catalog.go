package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/db"
	"github.com/eclipsereads/eclipse/internal/derive"
)

const (
	kindBooks   = "books"
	kindAuthors = "authors"
)

func (a *App) booksCmd() *cobra.Command {
	var (
		search string
		recent bool
	)

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List the books of the day",
		Long: `List the books of the day, or the recently viewed books with --recent.

--search keeps books whose title contains the text, ignoring case.`,
		Example: `  eclipse books
  eclipse books --search hobbit
  eclipse books --recent`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			title, books := catalog.ListBooksOfTheDay, c.Books()
			if recent {
				title, books = catalog.ListRecentlyViewed, c.RecentlyViewed()
			}
			printBooks(cmd.OutOrStdout(), title, derive.Books(books, search))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only show titles containing this text")
	cmd.Flags().BoolVar(&recent, "recent", false, "List recently viewed books instead")

	return cmd
}

func (a *App) authorsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "authors",
		Short:   "List authors with their bios",
		Example: "  eclipse authors --search austen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			printAuthors(cmd.OutOrStdout(), "Authors", derive.Authors(c.Authors(), search))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only show names containing this text")

	return cmd
}

func (a *App) rentersCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "renters",
		Short: "List the top renters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			renters := derive.Renters(c.TopRenters(), search)
			w := cmd.OutOrStdout()
			printHeading(w, "Top Renters", len(renters))
			for _, r := range renters {
				fmt.Fprintf(w, "  %s %s\n", formatTitle(r.Name), formatMuted(imageLabel(r.ImageName)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only show names containing this text")

	return cmd
}

func (a *App) featuredCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Sample a featured rotation",
		Long: `Print a random featured rotation, like the explore screen shows.

Each run samples again.`,
		Example: `  eclipse featured
  eclipse featured --kind authors`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kind != kindBooks && kind != kindAuthors {
				return fmt.Errorf("unknown kind %q (use %s or %s)", kind, kindBooks, kindAuthors)
			}

			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if kind == kindAuthors {
				printAuthors(w, "Featured Authors", derive.Featured(c.Authors(), a.rand))
				return nil
			}

			books := derive.Featured(c.Books(), a.rand)
			printHeading(w, "Featured Books", len(books))
			for _, b := range books {
				fmt.Fprintf(w, "  %s %s\n", formatFeatured("★"), formatTitle(b.Title))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", kindBooks, "What to feature: books or authors")

	return cmd
}

func (a *App) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the catalog database",
	}
	cmd.AddCommand(a.seedCmd())
	return cmd
}

func (a *App) seedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in catalog to a SQLite database",
		Long: `Write the built-in catalog to a SQLite database, replacing its content.

Without --db the configured db_path is used, falling back to
the default data directory. Point [catalog] db_path at the file
to browse it instead of the built-in catalog.`,
		Example: "  eclipse catalog seed --db ~/books.db",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = a.config.Catalog.DBPath
			}
			if path == "" {
				path = config.DefaultDBPath()
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating database directory: %w", err)
			}

			repo, err := db.New(path)
			if err != nil {
				return err
			}
			a.closers = append(a.closers, repo.Close)

			c := catalog.New(catalog.MockData())
			if err := repo.Seed(cmd.Context(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d books, %d authors, %d renters into %s\n",
				formatStats("Seeded"),
				len(c.Books())+len(c.RecentlyViewed()),
				len(c.Authors()),
				len(c.TopRenters()),
				path,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "db", "", "Database path (defaults to the configured db_path)")

	return cmd
}

func printHeading(w io.Writer, title string, n int) {
	fmt.Fprintf(w, "%s %s\n", formatHeader(title), formatMuted(fmt.Sprintf("(%d)", n)))
	if n == 0 {
		fmt.Fprintln(w, formatMuted("  nothing matches"))
	}
}

func printBooks(w io.Writer, title string, books []catalog.Book) {
	printHeading(w, title, len(books))
	for _, b := range books {
		fmt.Fprintf(w, "  %s %s\n", formatTitle(b.Title), formatMuted(imageLabel(b.ImageName)))
	}
}

func printAuthors(w io.Writer, title string, authors []catalog.Author) {
	printHeading(w, title, len(authors))
	bioWidth := max(termWidth()-4, 20)
	for _, au := range authors {
		fmt.Fprintf(w, "  %s\n", formatTitle(au.Name))
		if au.Bio != "" {
			fmt.Fprintf(w, "    %s\n", formatMuted(runewidth.Truncate(au.Bio, bioWidth, "…")))
		}
	}
}

func imageLabel(name string) string {
	if name == "" {
		return ""
	}
	return "[" + name + "]"
}
