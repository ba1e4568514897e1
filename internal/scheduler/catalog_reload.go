package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/BillJamesM/UdubHacks/internal/catalog"
	"github.com/BillJamesM/UdubHacks/internal/logger"
)

// CatalogReloader handles periodic reloading of the space catalog.
// Reloads swap the catalog atomically and never touch the booking
// ledger, so bookings survive catalog edits.
type CatalogReloader struct {
	loader        *catalog.Loader
	mapper        *catalog.Mapper
	catalog       *catalog.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader.
func NewCatalogReloader(
	catalogFile string,
	cat *catalog.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalog.NewLoader(catalogFile),
		mapper:        catalog.NewMapper(),
		catalog:       cat,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog once, then begins the periodic reload loop.
// A failed initial load is fatal; later failures keep the previous
// catalog in place.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(); err != nil {
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				if err := cr.Reload(); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload re-reads the catalog file and swaps the loaded spaces in.
func (cr *CatalogReloader) Reload() error {
	file, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	spaces, err := cr.mapper.MapSpaces(file)
	if err != nil {
		return fmt.Errorf("failed to map catalog: %w", err)
	}

	cr.catalog.Replace(spaces)
	cr.logger.Info("catalog reloaded",
		logger.Int("spaces", len(spaces)))

	return nil
}
