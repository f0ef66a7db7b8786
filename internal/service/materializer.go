package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

// applyIncomingRow applies one pulled server row against the local copy and
// reports whether a conflict was materialized. No automatic merge is ever
// attempted: a row with an uncommitted local change diverging from the server
// is parked as an in-conflict pair for the resolver.
func (c *syncCoordinator) applyIncomingRow(ctx context.Context, tableID string, incoming models.SyncRow) (bool, error) {
	local, err := c.rows.GetRow(ctx, tableID, incoming.RowID)
	if errors.Is(err, store.ErrRowNotFound) {
		if incoming.Deleted {
			// tombstone for a row this client never had
			return false, nil
		}
		return false, c.rows.UpsertRow(ctx, tableID, models.RowFromSyncRow(incoming))
	}
	if err != nil {
		return false, err
	}

	switch local.SyncState {
	case models.StateRest:
		if incoming.Deleted {
			return false, c.rows.DeleteRow(ctx, tableID, incoming.RowID)
		}
		return false, c.rows.UpsertRow(ctx, tableID, models.RowFromSyncRow(incoming))

	case models.StateDeleting:
		if incoming.Deleted {
			// both sides dropped the row; nothing left to reconcile
			return false, c.rows.DeleteRow(ctx, tableID, incoming.RowID)
		}
		return true, c.materializeConflict(ctx, tableID, local, incoming)

	case models.StateInserting, models.StateUpdating:
		return true, c.materializeConflict(ctx, tableID, local, incoming)

	case models.StateInConflict:
		// the shadow tracks the newest server version until resolution
		return false, c.upsertShadow(ctx, tableID, incoming)
	}

	return false, nil
}

// materializeConflict persists both sides of a diverged row: the local copy
// retagged in_conflict and a shadow copy of the server version under the same
// row id. Re-pulling the same row replaces any stale shadow.
func (c *syncCoordinator) materializeConflict(ctx context.Context, tableID string, local models.Row, incoming models.SyncRow) error {
	retagged := local.Clone()
	retagged.SyncState = models.StateInConflict
	retagged.Transactioning = false
	if err := c.rows.UpsertRow(ctx, tableID, retagged); err != nil {
		return err
	}

	return c.upsertShadow(ctx, tableID, incoming)
}

func (c *syncCoordinator) upsertShadow(ctx context.Context, tableID string, incoming models.SyncRow) error {
	shadow := models.RowFromSyncRow(incoming)
	shadow.ServerCopy = true
	shadow.SyncState = models.StateInConflict
	return c.rows.UpsertRow(ctx, tableID, shadow)
}
