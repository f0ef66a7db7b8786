// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the synchronized tables on the client side: row
// content, per-row sync flags, per-table version tokens and the table-level
// transaction guard. The backing store is a single SQLite database migrated
// with goose.
package store

import (
	"context"

	"github.com/MKhiriev/go-table-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/row_store_mock.go -package=mock

// RowStore is the local row database the sync coordinator works against.
//
// Every row exists in at most two slots per table: the local copy and, while
// the row is in conflict, a server shadow copy with the same rowID. Methods
// named GetRow/DeleteRow address the local slot; the *ServerCopy variants
// address the shadow slot.
type RowStore interface {
	// GetRow returns the local copy of a row. ErrRowNotFound if absent.
	GetRow(ctx context.Context, tableID, rowID string) (models.Row, error)
	// GetServerCopy returns the conflict shadow copy of a row.
	// ErrRowNotFound if absent.
	GetServerCopy(ctx context.Context, tableID, rowID string) (models.Row, error)
	// GetRowsByState returns local rows in the given state, excluding rows
	// currently claimed by a sync pass (transactioning=true).
	GetRowsByState(ctx context.Context, tableID string, state models.SyncState) ([]models.Row, error)
	// GetPendingRows returns local rows awaiting push: inserting, updating
	// or deleting, not transactioning.
	GetPendingRows(ctx context.Context, tableID string) ([]models.Row, error)
	// UpsertRow writes row into its slot (local or shadow, per
	// row.ServerCopy), replacing any previous version.
	UpsertRow(ctx context.Context, tableID string, row models.Row) error
	// DeleteRow removes the local copy of a row.
	DeleteRow(ctx context.Context, tableID, rowID string) error
	// DeleteServerCopy removes the conflict shadow copy of a row.
	DeleteServerCopy(ctx context.Context, tableID, rowID string) error
	// SetTransactioning flips the per-row claim flag for the given local
	// rows in one statement.
	SetTransactioning(ctx context.Context, tableID string, rowIDs []string, transactioning bool) error

	// GetTableSyncMetadata returns the sync bookkeeping for a table.
	// ErrTableNotFound if the table has never been tracked.
	GetTableSyncMetadata(ctx context.Context, tableID string) (models.TableSyncMetadata, error)
	// SetTableDataETag records the last fully applied server data version.
	SetTableDataETag(ctx context.Context, tableID, dataETag string) error
	// SetTableSchemaETag records the server schema version for a table.
	SetTableSchemaETag(ctx context.Context, tableID, schemaETag string) error
	// TouchLastSynced stamps the table with the current time.
	TouchLastSynced(ctx context.Context, tableID string) error
	// AcquireTableLock atomically takes the table-level transaction guard.
	// ErrTableBusy if another pass already holds it.
	AcquireTableLock(ctx context.Context, tableID string) error
	// ReleaseTableLock drops the table-level transaction guard.
	ReleaseTableLock(ctx context.Context, tableID string) error
	// ReleaseStaleLocks clears every table guard and row claim left behind
	// by a process killed mid-pass. Call once at startup, before any pass.
	ReleaseStaleLocks(ctx context.Context) error

	// PurgeTable drops every local trace of a table: both row slots, the
	// column order and the sync bookkeeping record.
	PurgeTable(ctx context.Context, tableID string) error

	// GetColumnOrder returns the user-defined column keys of a table in
	// display order.
	GetColumnOrder(ctx context.Context, tableID string) ([]string, error)
	// SetColumnOrder replaces the stored column order for a table.
	SetColumnOrder(ctx context.Context, tableID string, columns []string) error
}
