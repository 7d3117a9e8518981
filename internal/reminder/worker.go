// Package reminder runs the periodic reminder sweep.
package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Sweeper interface {
	Execute(ctx context.Context) (int, error)
}

type Worker struct {
	sweeper  Sweeper
	interval time.Duration
	log      *zap.Logger
}

func NewWorker(sweeper Sweeper, interval time.Duration, log *zap.Logger) *Worker {
	return &Worker{
		sweeper:  sweeper,
		interval: interval,
		log:      log,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	if _, err := w.sweeper.Execute(ctx); err != nil && ctx.Err() == nil {
		w.log.Warn("reminder sweep failed", zap.Error(err))
	}
}
