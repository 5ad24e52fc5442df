package tui

import (
	"github.com/eclipsereads/eclipse/internal/catalog"
	"github.com/eclipsereads/eclipse/internal/config"
	"github.com/eclipsereads/eclipse/internal/db"
)

// openSource picks the catalog source for cfg. The returned close func is never nil.
func openSource(cfg *config.Config) (catalog.Source, func() error, error) {
	return db.OpenSource(cfg.Catalog.DBPath)
}
