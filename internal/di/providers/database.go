package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/shelftrack/shelftrack-server/internal/config"
	"github.com/shelftrack/shelftrack-server/internal/logger"
	"github.com/shelftrack/shelftrack-server/internal/store"
)

// StoreHandle wraps the store for DI lifecycle management.
type StoreHandle struct {
	Store *store.Store
}

// Shutdown closes the underlying database.
func (h *StoreHandle) Shutdown() error {
	return h.Store.Close()
}

// ProvideStore opens the BadgerDB-backed book store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Store.DataPath, "db")
	st, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("store opened", "path", dbPath)

	return &StoreHandle{Store: st}, nil
}
