package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/shelftrack/shelftrack-server/internal/config"
	"github.com/shelftrack/shelftrack-server/internal/logger"
	"github.com/shelftrack/shelftrack-server/internal/search"
	"github.com/shelftrack/shelftrack-server/internal/service"
)

// SearchIndexHandle wraps the search index for DI lifecycle management.
type SearchIndexHandle struct {
	Index *search.SearchIndex
}

// Shutdown closes the underlying index.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Index.Close()
}

// ProvideSearchIndex opens the Bleve search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	idx, err := search.NewSearchIndex(search.Options{
		DataPath: cfg.Store.DataPath,
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &SearchIndexHandle{Index: idx}, nil
}

// ProvideSearchService creates the search service and registers it with the
// store so writes keep the index in sync.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewSearchService(indexHandle.Index, storeHandle.Store, log.Logger)
	storeHandle.Store.SetSearchIndexer(svc)

	return svc, nil
}

// TriggerSearchReindexIfNeeded rebuilds the search index when it is empty but
// the store already holds books, for example after a mapping version bump
// wiped the index on startup.
func TriggerSearchReindexIfNeeded(i do.Injector) {
	log := do.MustInvoke[*logger.Logger](i)
	svc := do.MustInvoke[*service.SearchService](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	ctx := context.Background()

	docCount, err := svc.DocumentCount()
	if err != nil {
		log.WithError(err).Warn("could not read search index document count")
		return
	}

	bookCount, err := storeHandle.Store.CountBooks(ctx)
	if err != nil {
		log.WithError(err).Warn("could not count stored books")
		return
	}

	if docCount > 0 || bookCount == 0 {
		return
	}

	log.Info("reindexing books", "count", bookCount)
	if err := svc.ReindexAll(ctx); err != nil {
		log.WithError(err).Warn("search reindex failed")
	}
}
