// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/service"
)

// HistoryPruneWorker periodically removes saved payloads older than the
// retention period.
type HistoryPruneWorker struct {
	pruner    service.HistoryPruner
	interval  time.Duration
	retention time.Duration

	logger *logger.Logger
}

func NewHistoryPruneWorker(pruner service.HistoryPruner, interval, retention time.Duration, logger *logger.Logger) *HistoryPruneWorker {
	return &HistoryPruneWorker{
		pruner:    pruner,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Run prunes once on start and then on every tick until ctx is cancelled.
func (h *HistoryPruneWorker) Run(ctx context.Context) {
	h.logger.Info().
		Dur("interval", h.interval).
		Dur("retention", h.retention).
		Msg("history prune worker started")

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.prune(ctx)
	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Msg("history prune worker stopped")
			return
		case <-ticker.C:
			h.prune(ctx)
		}
	}
}

func (h *HistoryPruneWorker) prune(ctx context.Context) {
	removed, err := h.pruner.Prune(ctx, h.retention)
	if err != nil {
		if ctx.Err() == nil {
			h.logger.Err(err).Str("func", "HistoryPruneWorker.prune").Msg("failed to prune history")
		}
		return
	}

	if removed > 0 {
		h.logger.Info().Int64("removed", removed).Msg("history pruned")
	}
}
