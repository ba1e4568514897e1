package scheduler

import (
	"context"
	"time"

	"github.com/BillJamesM/UdubHacks/internal/ledger"
	"github.com/BillJamesM/UdubHacks/internal/logger"
)

const (
	// DefaultRetention is how long past-date bookings are kept before
	// being swept from the ledger.
	DefaultRetention = 30 * 24 * time.Hour
)

// LedgerGC sweeps bookings whose date fell out of the retention window.
// The ledger is a single persisted blob, so pruning keeps both memory
// and the Redis payload bounded.
type LedgerGC struct {
	ledger    *ledger.Ledger
	logger    logger.Logger
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	stopCh    chan struct{}
}

// NewLedgerGC creates a new ledger garbage collector.
func NewLedgerGC(
	led *ledger.Ledger,
	log logger.Logger,
	interval time.Duration,
	retention time.Duration,
) *LedgerGC {
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &LedgerGC{
		ledger:    led,
		logger:    log,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start runs one sweep immediately, then sweeps on the interval.
func (gc *LedgerGC) Start(ctx context.Context) error {
	gc.Collect(ctx)

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect(ctx)
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector.
func (gc *LedgerGC) Stop() {
	close(gc.stopCh)
}

// Collect removes bookings dated before the retention cutoff.
func (gc *LedgerGC) Collect(ctx context.Context) {
	cutoff := gc.now().Add(-gc.retention).Format("2006-01-02")

	removed := gc.ledger.PruneBefore(ctx, cutoff)
	if removed > 0 {
		gc.logger.Info("pruned stale bookings",
			logger.Int("removed", removed),
			logger.String("cutoff", cutoff))
	} else {
		gc.logger.Debug("no stale bookings to prune")
	}
}
