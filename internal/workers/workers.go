package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-qr-forge/internal/config"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
)

type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

// NewWorkers builds the server background workers. The history pruner is
// added only when a prune interval is configured.
func NewWorkers(cfg config.ServerWorkers, services *service.Services, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.PruneInterval > 0 {
		w.workers = append(w.workers, NewHistoryPruneWorker(services.HistoryPruner, cfg.PruneInterval, cfg.HistoryRetention, logger))
	}
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
