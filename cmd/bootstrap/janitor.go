package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"staybooking/internal/infra/db"
	"staybooking/internal/infra/repository"

	"go.uber.org/fx"
)

// Expired idempotency keys are garbage collected in the background so
// replay lookups stay on a small table.
const idempotencyCleanupInterval = time.Hour

var JanitorModule = fx.Module("janitor",
	fx.Invoke(startIdempotencyJanitor),
)

func startIdempotencyJanitor(lc fx.Lifecycle, dbtx db.DBTX, logger *slog.Logger) {
	repo := repository.NewIdempotencyRepository(dbtx)
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ticker := time.NewTicker(idempotencyCleanupInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						removed, err := repo.DeleteExpired(ctx)
						if err != nil {
							logger.Warn("idempotency key cleanup failed", "error", err)
							continue
						}
						if removed > 0 {
							logger.Info("expired idempotency keys removed", "count", removed)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}
