// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

// syncCoordinator runs the pull-then-push synchronization pass. One pass over
// one table is strictly sequential: the diff pull is fully applied to local
// storage before any push, so every push uses the freshest known server state
// as its optimistic-concurrency base.
type syncCoordinator struct {
	rows     store.RowStore
	remote   adapter.RemoteTableClient
	tableIDs []string
	logger   *logger.Logger
}

// NewSyncCoordinator constructs a [TableSynchronizer] over the given local
// store and remote client. appCfg.TableIDs drives the Synchronize sweep.
func NewSyncCoordinator(rows store.RowStore, remote adapter.RemoteTableClient, appCfg config.ClientApp, log *logger.Logger) TableSynchronizer {
	log.Debug().Msg("creating sync coordinator")
	return &syncCoordinator{
		rows:     rows,
		remote:   remote,
		tableIDs: appCfg.TableIDs,
		logger:   log,
	}
}

// Synchronize implements [TableSynchronizer]. Tables are processed in the
// configured order; a failing table is reported and the sweep continues,
// except for rejected credentials, which cannot recover mid-sweep.
func (c *syncCoordinator) Synchronize(ctx context.Context) ([]Outcome, error) {
	log := logger.FromContext(ctx)

	outcomes := make([]Outcome, 0, len(c.tableIDs))
	var errs []error

	for _, tableID := range c.tableIDs {
		outcome, err := c.SynchronizeTable(ctx, tableID)
		outcomes = append(outcomes, outcome)

		if err != nil {
			log.Err(err).Str("func", "*syncCoordinator.Synchronize").Str("table", tableID).Msg("table pass failed")
			errs = append(errs, fmt.Errorf("table %s: %w", tableID, err))

			if errors.Is(err, adapter.ErrUnauthorized) {
				// credentials will not get better for the next table
				return outcomes, errors.Join(errs...)
			}
		}

		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			return outcomes, errors.Join(errs...)
		}
	}

	return outcomes, errors.Join(errs...)
}

// SynchronizeTable implements [TableSynchronizer].
func (c *syncCoordinator) SynchronizeTable(ctx context.Context, tableID string) (Outcome, error) {
	log := logger.FromContext(ctx)
	outcome := Outcome{TableID: tableID, FailedRows: map[string]error{}}

	if err := c.rows.AcquireTableLock(ctx, tableID); err != nil {
		if errors.Is(err, store.ErrTableBusy) {
			return outcome, fmt.Errorf("%w: table %s", ErrBusy, tableID)
		}
		return outcome, err
	}
	// the guard and the row claims are durable; cleanup must still reach the
	// store when the pass context is cancelled mid-pass, or the table stays
	// wedged until the next process restart
	cleanupCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := c.rows.ReleaseTableLock(cleanupCtx, tableID); err != nil {
			log.Err(err).Str("func", "*syncCoordinator.SynchronizeTable").Str("table", tableID).Msg("error releasing table guard")
		}
	}()

	meta, err := c.rows.GetTableSyncMetadata(ctx, tableID)
	if err != nil && !errors.Is(err, store.ErrTableNotFound) {
		return outcome, err
	}

	resource, err := c.fetchOrCreateTable(ctx, tableID)
	if err != nil {
		return outcome, err
	}
	if resource.SchemaETag != meta.SchemaETag {
		if err = c.rows.SetTableSchemaETag(ctx, tableID, resource.SchemaETag); err != nil {
			return outcome, err
		}
	}

	// pull: apply the full server diff before touching any pending row
	lastDataETag := meta.DataETag
	if resource.DataETag != meta.DataETag {
		pulled, pullErr := c.remote.GetUpdates(ctx, resource, meta.DataETag)
		if pullErr != nil {
			return outcome, pullErr
		}

		for _, incoming := range pulled.Rows {
			conflicted, applyErr := c.applyIncomingRow(ctx, tableID, incoming)
			if applyErr != nil {
				return outcome, applyErr
			}
			if conflicted {
				outcome.Stats.Conflicts++
			}
		}

		lastDataETag = resource.DataETag
		if pulled.TableDataETag != "" {
			lastDataETag = pulled.TableDataETag
		}
	}

	// push: claim the pending rows, then push them one by one
	pending, err := c.rows.GetPendingRows(ctx, tableID)
	if err != nil {
		return outcome, err
	}

	pendingIDs := make([]string, 0, len(pending))
	for _, row := range pending {
		pendingIDs = append(pendingIDs, row.RowID)
	}
	if err = c.rows.SetTransactioning(ctx, tableID, pendingIDs, true); err != nil {
		return outcome, err
	}
	// committed rows are rewritten unclaimed; this unclaims the rest on every
	// exit path, cancellation included, so they are retried on the next pass
	// instead of staying stuck
	defer func() {
		if err := c.rows.SetTransactioning(cleanupCtx, tableID, pendingIDs, false); err != nil {
			log.Err(err).Str("func", "*syncCoordinator.SynchronizeTable").Str("table", tableID).Msg("error unclaiming pending rows")
		}
	}()

	// re-read under the claim: an edit that landed between the select and the
	// claim must be pushed with its final values, not the ones fetched before
	claimed := make([]models.Row, 0, len(pendingIDs))
	for _, rowID := range pendingIDs {
		row, rowErr := c.rows.GetRow(ctx, tableID, rowID)
		if rowErr != nil {
			return outcome, rowErr
		}
		claimed = append(claimed, row)
	}

	outcome.Success = true
	var authErr error
	for _, row := range claimed {
		newDataETag, pushErr := c.pushRow(ctx, resource, tableID, row, &outcome.Stats)
		if pushErr != nil {
			if errors.Is(pushErr, adapter.ErrUnauthorized) {
				// the pass aborts; remaining rows stay in their pre-pass state
				authErr = pushErr
				outcome.Success = false
				break
			}
			log.Err(pushErr).Str("func", "*syncCoordinator.SynchronizeTable").
				Str("table", tableID).Str("row", row.RowID).Msg("row push failed")
			outcome.Success = false
			outcome.FailedRows[row.RowID] = pushErr
			continue
		}
		if newDataETag != "" {
			lastDataETag = newDataETag
		}
	}

	if authErr != nil {
		return outcome, authErr
	}

	outcome.DataETag = lastDataETag
	if !outcome.Success {
		return outcome, nil
	}

	if lastDataETag != meta.DataETag {
		if err = c.rows.SetTableDataETag(ctx, tableID, lastDataETag); err != nil {
			return outcome, err
		}
	}
	if err = c.rows.TouchLastSynced(ctx, tableID); err != nil {
		return outcome, err
	}

	return outcome, nil
}

// fetchOrCreateTable resolves the remote table resource, creating the table
// from the locally known column order when the server has never seen it.
func (c *syncCoordinator) fetchOrCreateTable(ctx context.Context, tableID string) (models.TableResource, error) {
	resource, err := c.remote.GetTable(ctx, tableID)
	if err == nil || !errors.Is(err, adapter.ErrNotFound) {
		return resource, err
	}

	columns, err := c.rows.GetColumnOrder(ctx, tableID)
	if err != nil {
		return models.TableResource{}, err
	}

	definitions := make([]models.ColumnDefinition, 0, len(columns))
	for _, key := range columns {
		definitions = append(definitions, models.ColumnDefinition{ElementKey: key, ElementType: "string"})
	}

	return c.remote.CreateTable(ctx, tableID, definitions)
}

// pushRow pushes one claimed pending row and commits its local state on
// acceptance. Inserts and updates go through the same upsert call; the remote
// protocol tells them apart only by presence of a prior rowETag.
func (c *syncCoordinator) pushRow(ctx context.Context, resource models.TableResource, tableID string, row models.Row, stats *Stats) (string, error) {
	switch row.SyncState {
	case models.StateDeleting:
		if row.RowETag == "" {
			// the row never reached the server; dropping it locally is enough
			if err := c.rows.DeleteRow(ctx, tableID, row.RowID); err != nil {
				return "", err
			}
			stats.Deletes++
			return "", nil
		}

		newDataETag, err := c.remote.DeleteRow(ctx, resource, row.RowID, row.RowETag)
		if err != nil {
			return "", err
		}
		if err = c.rows.DeleteRow(ctx, tableID, row.RowID); err != nil {
			return "", err
		}
		stats.Deletes++
		return newDataETag, nil

	case models.StateInserting, models.StateUpdating:
		accepted, newDataETag, err := c.remote.PutRow(ctx, resource, row.ToSyncRow())
		if err != nil {
			return "", err
		}

		committed := row.Clone()
		committed.RowETag = accepted.RowETag
		committed.SyncState = models.StateRest
		committed.Transactioning = false
		if err = c.rows.UpsertRow(ctx, tableID, committed); err != nil {
			return "", err
		}

		if row.SyncState == models.StateInserting {
			stats.Inserts++
		} else {
			stats.Updates++
		}
		return newDataETag, nil
	}

	return "", nil
}

// DropTable implements [TableSynchronizer].
func (c *syncCoordinator) DropTable(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	if err := c.rows.AcquireTableLock(ctx, tableID); err != nil {
		if errors.Is(err, store.ErrTableBusy) {
			return fmt.Errorf("%w: table %s", ErrBusy, tableID)
		}
		return err
	}
	defer func() {
		if err := c.rows.ReleaseTableLock(context.WithoutCancel(ctx), tableID); err != nil {
			log.Err(err).Str("func", "*syncCoordinator.DropTable").Str("table", tableID).Msg("error releasing table guard")
		}
	}()

	err := c.remote.DeleteTable(ctx, tableID)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return err
	}

	return c.rows.PurgeTable(ctx, tableID)
}
