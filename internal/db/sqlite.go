// Package db provides SQLite storage for the book catalog.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/eclipsereads/eclipse/internal/catalog"
)

// ErrEmptyCatalog is returned by Load when the database holds no catalog content.
var ErrEmptyCatalog = errors.New("catalog database is empty")

const (
	listFeatured = "featured"
	listRecent   = "recent"

	tagFavorite   = "favorite"
	tagExplore    = "explore"
	tagPreference = "preference"
)

// SQLite stores a catalog in SQLite. It implements catalog.Source.
type SQLite struct {
	db *sql.DB
}

var _ catalog.Source = (*SQLite)(nil)

// New opens the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Seed replaces the stored catalog with c in a single transaction.
func (s *SQLite) Seed(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"custom_book_genres", "custom_books", "books", "authors", "renters", "tags"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	d := c.Data()
	if err := insertBooks(ctx, tx, listFeatured, d.Books); err != nil {
		return err
	}
	if err := insertBooks(ctx, tx, listRecent, d.RecentlyViewed); err != nil {
		return err
	}

	for i, a := range d.Authors {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO authors (id, position, name, bio, image_name) VALUES (?, ?, ?, ?, ?)`,
			a.ID.String(), i, a.Name, a.Bio, a.ImageName)
		if err != nil {
			return fmt.Errorf("inserting author %q: %w", a.Name, err)
		}
	}

	for i, r := range d.TopRenters {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO renters (id, position, name, image_name) VALUES (?, ?, ?, ?)`,
			r.ID.String(), i, r.Name, r.ImageName)
		if err != nil {
			return fmt.Errorf("inserting renter %q: %w", r.Name, err)
		}
	}

	for i, b := range d.SwipeBooks {
		if err := insertCustomBook(ctx, tx, i, b); err != nil {
			return err
		}
	}

	if err := insertTags(ctx, tx, tagFavorite, plainTags(d.FavoriteGenres)); err != nil {
		return err
	}
	if err := insertTags(ctx, tx, tagExplore, plainTags(d.ExploreGenres)); err != nil {
		return err
	}
	if err := insertTags(ctx, tx, tagPreference, d.Preferences); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertBooks(ctx context.Context, tx *sql.Tx, list string, books []catalog.Book) error {
	for i, b := range books {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO books (id, list, position, title, image_name) VALUES (?, ?, ?, ?, ?)`,
			b.ID.String(), list, i, b.Title, b.ImageName)
		if err != nil {
			return fmt.Errorf("inserting book %q: %w", b.Title, err)
		}
	}
	return nil
}

func insertCustomBook(ctx context.Context, tx *sql.Tx, position int, b catalog.CustomBook) error {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO custom_books (
			position, title, author, cover_image_name, short_description, long_description
		) VALUES (?, ?, ?, ?, ?, ?)
	`, position, b.Title, b.Author, b.CoverImageName, b.ShortDescription, b.LongDescription)
	if err != nil {
		return fmt.Errorf("inserting custom book %q: %w", b.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	for i, g := range b.Genres {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO custom_book_genres (book_id, position, genre) VALUES (?, ?, ?)`, id, i, g)
		if err != nil {
			return fmt.Errorf("inserting genre %q: %w", g, err)
		}
	}
	return nil
}

func plainTags(tags []string) []catalog.Preference {
	out := make([]catalog.Preference, len(tags))
	for i, t := range tags {
		out[i] = catalog.Preference{Tag: t}
	}
	return out
}

func insertTags(ctx context.Context, tx *sql.Tx, kind string, tags []catalog.Preference) error {
	for i, t := range tags {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tags (kind, position, tag, icon) VALUES (?, ?, ?, ?)`, kind, i, t.Tag, t.Icon)
		if err != nil {
			return fmt.Errorf("inserting %s tag %q: %w", kind, t.Tag, err)
		}
	}
	return nil
}

// Load reads the stored catalog.
// Returns ErrEmptyCatalog if nothing has been seeded.
func (s *SQLite) Load(ctx context.Context) (*catalog.Catalog, error) {
	var d catalog.Data
	var err error

	if d.Books, err = s.listBooks(ctx, listFeatured); err != nil {
		return nil, err
	}
	if d.RecentlyViewed, err = s.listBooks(ctx, listRecent); err != nil {
		return nil, err
	}
	if d.Authors, err = s.listAuthors(ctx); err != nil {
		return nil, err
	}
	if d.TopRenters, err = s.listRenters(ctx); err != nil {
		return nil, err
	}
	if d.SwipeBooks, err = s.listCustomBooks(ctx); err != nil {
		return nil, err
	}

	tags, err := s.listTags(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tags[tagFavorite] {
		d.FavoriteGenres = append(d.FavoriteGenres, t.Tag)
	}
	for _, t := range tags[tagExplore] {
		d.ExploreGenres = append(d.ExploreGenres, t.Tag)
	}
	d.Preferences = tags[tagPreference]

	c := catalog.New(d)
	if c.Empty() {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

func (s *SQLite) listBooks(ctx context.Context, list string) ([]catalog.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, image_name FROM books WHERE list = ? ORDER BY position`, list)
	if err != nil {
		return nil, fmt.Errorf("querying %s books: %w", list, err)
	}
	defer func() { _ = rows.Close() }()

	var books []catalog.Book
	for rows.Next() {
		var (
			b  catalog.Book
			id string
		)
		if err := rows.Scan(&id, &b.Title, &b.ImageName); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		if b.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing book id %q: %w", id, err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

func (s *SQLite) listAuthors(ctx context.Context) ([]catalog.Author, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, bio, image_name FROM authors ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying authors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var authors []catalog.Author
	for rows.Next() {
		var (
			a  catalog.Author
			id string
		)
		if err := rows.Scan(&id, &a.Name, &a.Bio, &a.ImageName); err != nil {
			return nil, fmt.Errorf("scanning author: %w", err)
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing author id %q: %w", id, err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating authors: %w", err)
	}
	return authors, nil
}

func (s *SQLite) listRenters(ctx context.Context) ([]catalog.Renter, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, image_name FROM renters ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying renters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var renters []catalog.Renter
	for rows.Next() {
		var (
			r  catalog.Renter
			id string
		)
		if err := rows.Scan(&id, &r.Name, &r.ImageName); err != nil {
			return nil, fmt.Errorf("scanning renter: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing renter id %q: %w", id, err)
		}
		renters = append(renters, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating renters: %w", err)
	}
	return renters, nil
}

func (s *SQLite) listCustomBooks(ctx context.Context) ([]catalog.CustomBook, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, cover_image_name, short_description, long_description
		FROM custom_books
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying custom books: %w", err)
	}

	var (
		ids   []int64
		books []catalog.CustomBook
	)
	for rows.Next() {
		var (
			b  catalog.CustomBook
			id int64
		)
		if err := rows.Scan(&id, &b.Title, &b.Author, &b.CoverImageName, &b.ShortDescription, &b.LongDescription); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scanning custom book: %w", err)
		}
		ids = append(ids, id)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterating custom books: %w", err)
	}
	_ = rows.Close()

	// Genres are read after the books cursor is closed; the pool may hold one connection.
	for i, id := range ids {
		genres, err := s.listGenres(ctx, id)
		if err != nil {
			return nil, err
		}
		books[i].Genres = genres
	}
	return books, nil
}

func (s *SQLite) listGenres(ctx context.Context, bookID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT genre FROM custom_book_genres WHERE book_id = ? ORDER BY position`, bookID)
	if err != nil {
		return nil, fmt.Errorf("querying genres: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scanning genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating genres: %w", err)
	}
	return genres, nil
}

func (s *SQLite) listTags(ctx context.Context) (map[string][]catalog.Preference, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind, tag, icon FROM tags ORDER BY kind, position`)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make(map[string][]catalog.Preference)
	for rows.Next() {
		var (
			kind string
			p    catalog.Preference
		)
		if err := rows.Scan(&kind, &p.Tag, &p.Icon); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags[kind] = append(tags[kind], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}
