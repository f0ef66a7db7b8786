// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-table-sync/models"
)

// TableSynchronizer defines the contract for running synchronization passes
// against the remote row store.
type TableSynchronizer interface {
	// SynchronizeTable runs one full pull-then-push pass for a single table.
	// At most one pass per table may be in flight: a concurrent call returns
	// ErrBusy immediately without touching any row. Per-row push failures do
	// not abort the pass; they are collected in the returned Outcome and
	// flip Outcome.Success to false. Table-level failures (resource fetch,
	// guard acquisition, rejected credentials) abort the pass with an error.
	SynchronizeTable(ctx context.Context, tableID string) (Outcome, error)

	// Synchronize runs SynchronizeTable for every configured table and
	// aggregates the per-table outcomes. A failing table does not stop the
	// remaining tables from being synchronized.
	Synchronize(ctx context.Context) ([]Outcome, error)

	// DropTable removes the table from the remote store and discards its
	// local sync bookkeeping.
	DropTable(ctx context.Context, tableID string) error
}

// ConflictService exposes materialized row conflicts to the external
// resolution UI.
type ConflictService interface {
	// ConflictColumns returns, in the table's defined column order, every
	// user column whose local and server values disagree for the given
	// in-conflict row. ErrNotInConflict if the row has no materialized
	// conflict.
	ConflictColumns(ctx context.Context, tableID, rowID string) ([]models.ConflictColumn, error)

	// ConcordantColumns returns, in the table's defined column order, every
	// user column whose local and server values agree for the given
	// in-conflict row.
	ConcordantColumns(ctx context.Context, tableID, rowID string) ([]models.ConcordantColumn, error)

	// ResolveConflict merges an in-conflict row. chosen must cover every
	// column reported by ConflictColumns; a partial map is rejected with
	// ErrIncompleteResolution and the row stays in conflict. On success the
	// server shadow copy is discarded and the row becomes updating with the
	// server's rowETag as its optimistic-concurrency base, ready for the
	// next push. "Take all local", "take all server" and per-column merges
	// are all expressed through the chosen map by the caller.
	ResolveConflict(ctx context.Context, tableID, rowID string, chosen map[string]string) error
}

// LocalEditService is the entry point the embedding application uses for
// local row edits. It enforces the row state machine and refuses to touch
// rows currently owned by an in-flight sync pass.
type LocalEditService interface {
	// CreateLocalRow stores a new row in the inserting state under a fresh
	// row id and returns it.
	CreateLocalRow(ctx context.Context, tableID string, values map[string]string) (models.Row, error)

	// UpdateLocalRow overlays values onto the row's current values and
	// advances its sync state (rest becomes updating; inserting stays
	// inserting). ErrRowLocked if a sync pass owns the row;
	// models.ErrIllegalTransition for in-conflict or deleting rows.
	UpdateLocalRow(ctx context.Context, tableID, rowID string, values map[string]string) (models.Row, error)

	// DeleteLocalRow marks the row deleting so the next pass removes it from
	// the server. ErrRowLocked if a sync pass owns the row.
	DeleteLocalRow(ctx context.Context, tableID, rowID string) error
}
