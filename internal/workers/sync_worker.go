// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
)

const defaultSyncInterval = 5 * time.Minute

// SyncWorker periodically runs a synchronization sweep over all configured
// tables. Failed sweeps are logged and retried on the next tick; the local
// dataset stays consistent between attempts, so there is no backoff logic.
type SyncWorker struct {
	sync     service.TableSynchronizer
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(sync service.TableSynchronizer, workersCfg config.ClientWorkers, log *logger.Logger) *SyncWorker {
	interval := workersCfg.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &SyncWorker{
		sync:     sync,
		interval: interval,
		logger:   log,
	}
}

// Run implements [Worker]. It performs one sweep immediately, then one per
// interval until ctx is cancelled.
func (w *SyncWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)

	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *SyncWorker) runOnce(ctx context.Context) {
	log := logger.FromContext(ctx)

	outcomes, err := w.sync.Synchronize(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SyncWorker.runOnce").Msg("synchronization sweep failed")
	}

	for _, outcome := range outcomes {
		log.Info().Str("func", "*SyncWorker.runOnce").
			Str("table", outcome.TableID).
			Bool("success", outcome.Success).
			Int("inserts", outcome.Stats.Inserts).
			Int("updates", outcome.Stats.Updates).
			Int("deletes", outcome.Stats.Deletes).
			Int("conflicts", outcome.Stats.Conflicts).
			Int("failed_rows", len(outcome.FailedRows)).
			Msg("table pass finished")
	}
}
