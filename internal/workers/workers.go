package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A seed path adds a
// [SeedWorker].
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SeedCSVPath != "" {
		w.workers = append(w.workers, NewSeedWorker(services.ImportService, cfg, logger))
	}
	return w
}

// Run runs every worker in order. A failed worker does not stop the ones
// after it, unless ctx is done; all errors are joined.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := worker.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
