package db

import (
	"fmt"
	"os"

	"github.com/eclipsereads/eclipse/internal/catalog"
)

// OpenSource returns the catalog source for path. An empty path serves the
// built-in catalog. The returned close func is never nil.
func OpenSource(path string) (catalog.Source, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return catalog.Builtin{}, noop, nil
	}

	missing, err := pathMissing(path)
	if err != nil {
		return nil, noop, fmt.Errorf("checking db path: %w", err)
	}
	if missing {
		return nil, noop, fmt.Errorf("catalog database %s not found, run `eclipse catalog seed --db %s` first", path, path)
	}

	repo, err := New(path)
	if err != nil {
		return nil, noop, fmt.Errorf("opening catalog database: %w", err)
	}
	return repo, repo.Close, nil
}

func pathMissing(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}
