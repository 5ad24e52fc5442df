package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS books (
			id         TEXT PRIMARY KEY,
			list       TEXT NOT NULL CHECK(list IN ('featured', 'recent')),
			position   INTEGER NOT NULL,
			title      TEXT NOT NULL,
			image_name TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS authors (
			id         TEXT PRIMARY KEY,
			position   INTEGER NOT NULL,
			name       TEXT NOT NULL,
			bio        TEXT NOT NULL DEFAULT '',
			image_name TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS renters (
			id         TEXT PRIMARY KEY,
			position   INTEGER NOT NULL,
			name       TEXT NOT NULL,
			image_name TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS custom_books (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			position          INTEGER NOT NULL,
			title             TEXT NOT NULL,
			author            TEXT NOT NULL,
			cover_image_name  TEXT NOT NULL DEFAULT '',
			short_description TEXT NOT NULL DEFAULT '',
			long_description  TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS custom_book_genres (
			book_id  INTEGER NOT NULL REFERENCES custom_books(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			genre    TEXT NOT NULL,
			PRIMARY KEY (book_id, position)
		);

		CREATE TABLE IF NOT EXISTS tags (
			kind     TEXT NOT NULL CHECK(kind IN ('favorite', 'explore', 'preference')),
			position INTEGER NOT NULL,
			tag      TEXT NOT NULL,
			icon     TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (kind, position)
		);

		CREATE INDEX IF NOT EXISTS idx_books_list ON books(list, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating catalog tables: %w", err)
	}

	return nil
}
