package worker

// snapshot_cron.go
// Background goroutine that keeps the stored health snapshot columns on
// items in line with their current counts. Sales only decrement
// total_units, so the snapshot drifts until the next full item update.
// API responses always recompute; this keeps the raw table honest for
// ad-hoc SQL and exports.

import (
	"context"
	"time"

	"duka/internal/pricing"
	"duka/internal/repository"

	"github.com/rs/zerolog/log"
)

const snapshotTickInterval = 5 * time.Minute

// SnapshotCronConfig holds the dependencies for the refresh goroutine.
type SnapshotCronConfig struct {
	Items repository.ItemRepository
}

// StartSnapshotCron launches a background goroutine that ticks every five
// minutes and rewrites any health snapshot that no longer matches the
// item's counts. It respects the context for graceful shutdown.
func StartSnapshotCron(ctx context.Context, cfg SnapshotCronConfig) {
	go func() {
		ticker := time.NewTicker(snapshotTickInterval)
		defer ticker.Stop()

		log.Info().Msg("snapshot_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("snapshot_cron: shutting down")
				return
			case <-ticker.C:
				refreshSnapshots(ctx, cfg)
			}
		}
	}()
}

func refreshSnapshots(ctx context.Context, cfg SnapshotCronConfig) {
	items, err := cfg.Items.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("snapshot_cron: failed to list items")
		return
	}

	updated := 0
	for i := range items {
		it := &items[i]
		h := pricing.Health(it.TotalUnits, it.BalesCount, it.UnitsPerBale)
		if h.Status == it.HealthStatus && h.Color == it.HealthColor {
			continue
		}
		fields := map[string]interface{}{
			"health_status": h.Status,
			"health_color":  h.Color,
		}
		// touchTimestamp=false: a snapshot refresh is not a stock edit.
		if err := cfg.Items.UpdateFields(ctx, it.ID, fields, false); err != nil {
			log.Error().Err(err).Str("item_id", it.ID.String()).Msg("snapshot_cron: update failed")
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Info().Int("count", updated).Msg("snapshot_cron: refreshed health snapshots")
	}
}
