package pipeline

import (
	"context"
	"time"

	"call-quality-backend/internal/logger"
)

// Driver is one polling stage of the pipeline. A Cycle processes whatever work
// is currently pending and returns; errors abort the cycle, not the loop.
type Driver interface {
	Name() string
	Cycle(ctx context.Context) error
}

// Run polls the driver forever at the given interval until the context is
// cancelled. One cycle runs immediately on start. A failed or panicking cycle
// is logged and the loop keeps the next tick.
func Run(ctx context.Context, driver Driver, interval time.Duration) {
	log := logger.ForStage(driver.Name())
	log.WithField("interval", interval.String()).Info("stage driver started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runCycle(ctx, driver, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("stage driver stopped")
			return
		case <-ticker.C:
			runCycle(ctx, driver, log)
		}
	}
}

func runCycle(ctx context.Context, driver Driver, log *logger.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("cycle panicked")
		}
	}()

	if err := driver.Cycle(ctx); err != nil {
		log.WithError(err).Error("cycle failed")
	}
}
