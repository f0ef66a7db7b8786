// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

func newTestStore(t *testing.T) RowStore {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return NewRowRepository(db, logger.Nop())
}

func restRow(rowID string) models.Row {
	return models.Row{
		RowID:     rowID,
		RowETag:   "e1",
		SyncState: models.StateRest,
		Values:    map[string]string{"name": "Alice", "age": "30"},
	}
}

// ── row slots ───────────────────────────────────────────────────────────────

func TestRowRepository_UpsertAndGetRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	row := restRow("r1")
	row.FormID = "form-1"
	row.Locale = "en_US"
	row.SavepointType = "COMPLETE"
	require.NoError(t, s.UpsertRow(ctx, "t1", row))

	got, err := s.GetRow(ctx, "t1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "e1", got.RowETag)
	assert.Equal(t, models.StateRest, got.SyncState)
	assert.Equal(t, "form-1", got.FormID)
	assert.Equal(t, "en_US", got.Locale)
	assert.Equal(t, map[string]string{"name": "Alice", "age": "30"}, got.Values)
	assert.False(t, got.ServerCopy)
}

func TestRowRepository_GetRow_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRow(context.Background(), "t1", "missing")

	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestRowRepository_UpsertReplacesExistingSlot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRow(ctx, "t1", restRow("r1")))

	updated := restRow("r1")
	updated.RowETag = "e2"
	updated.SyncState = models.StateUpdating
	updated.Values["name"] = "Bob"
	require.NoError(t, s.UpsertRow(ctx, "t1", updated))

	got, err := s.GetRow(ctx, "t1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "e2", got.RowETag)
	assert.Equal(t, models.StateUpdating, got.SyncState)
	assert.Equal(t, "Bob", got.Values["name"])
}

func TestRowRepository_ServerCopyIsSeparateSlot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	local := restRow("r1")
	local.SyncState = models.StateInConflict
	require.NoError(t, s.UpsertRow(ctx, "t1", local))

	shadow := restRow("r1")
	shadow.ServerCopy = true
	shadow.RowETag = "e-server"
	shadow.SyncState = models.StateInConflict
	shadow.Values["name"] = "Server Alice"
	require.NoError(t, s.UpsertRow(ctx, "t1", shadow))

	gotLocal, err := s.GetRow(ctx, "t1", "r1")
	require.NoError(t, err)
	gotShadow, err := s.GetServerCopy(ctx, "t1", "r1")
	require.NoError(t, err)

	assert.Equal(t, "Alice", gotLocal.Values["name"])
	assert.Equal(t, "Server Alice", gotShadow.Values["name"])
	assert.True(t, gotShadow.ServerCopy)

	// dropping the shadow keeps the local copy
	require.NoError(t, s.DeleteServerCopy(ctx, "t1", "r1"))
	_, err = s.GetServerCopy(ctx, "t1", "r1")
	assert.ErrorIs(t, err, ErrRowNotFound)
	_, err = s.GetRow(ctx, "t1", "r1")
	assert.NoError(t, err)
}

func TestRowRepository_DeleteRow_AbsentIsNoError(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.DeleteRow(context.Background(), "t1", "missing"))
}

// ── pending-row selection ───────────────────────────────────────────────────

func TestRowRepository_GetPendingRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	atRest := restRow("r-rest")

	inserting := restRow("r-insert")
	inserting.RowETag = ""
	inserting.SyncState = models.StateInserting

	updating := restRow("r-update")
	updating.SyncState = models.StateUpdating

	deleting := restRow("r-delete")
	deleting.SyncState = models.StateDeleting

	claimed := restRow("r-claimed")
	claimed.SyncState = models.StateUpdating
	claimed.Transactioning = true

	shadow := restRow("r-shadow")
	shadow.SyncState = models.StateInConflict
	shadow.ServerCopy = true

	for _, row := range []models.Row{atRest, inserting, updating, deleting, claimed, shadow} {
		require.NoError(t, s.UpsertRow(ctx, "t1", row))
	}

	pending, err := s.GetPendingRows(ctx, "t1")
	require.NoError(t, err)

	ids := make([]string, 0, len(pending))
	for _, row := range pending {
		ids = append(ids, row.RowID)
	}
	assert.Equal(t, []string{"r-delete", "r-insert", "r-update"}, ids)
}

func TestRowRepository_GetRowsByState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	conflicted := restRow("r1")
	conflicted.SyncState = models.StateInConflict
	require.NoError(t, s.UpsertRow(ctx, "t1", conflicted))
	require.NoError(t, s.UpsertRow(ctx, "t1", restRow("r2")))

	got, err := s.GetRowsByState(ctx, "t1", models.StateInConflict)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].RowID)
}

func TestRowRepository_SetTransactioning(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := restRow("r1")
	first.SyncState = models.StateUpdating
	second := restRow("r2")
	second.SyncState = models.StateUpdating
	require.NoError(t, s.UpsertRow(ctx, "t1", first))
	require.NoError(t, s.UpsertRow(ctx, "t1", second))

	require.NoError(t, s.SetTransactioning(ctx, "t1", []string{"r1", "r2"}, true))

	pending, err := s.GetPendingRows(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, pending, "claimed rows must not be selected again")

	require.NoError(t, s.SetTransactioning(ctx, "t1", []string{"r1", "r2"}, false))

	pending, err = s.GetPendingRows(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestRowRepository_SetTransactioning_EmptyIsNoOp(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.SetTransactioning(context.Background(), "t1", nil, true))
}

// ── table sync metadata ─────────────────────────────────────────────────────

func TestRowRepository_GetTableSyncMetadata_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetTableSyncMetadata(context.Background(), "untracked")

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestRowRepository_TableSyncMetadataRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetTableDataETag(ctx, "t1", "d1"))
	require.NoError(t, s.SetTableSchemaETag(ctx, "t1", "s1"))

	meta, err := s.GetTableSyncMetadata(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", meta.TableID)
	assert.Equal(t, "d1", meta.DataETag)
	assert.Equal(t, "s1", meta.SchemaETag)
	assert.False(t, meta.Transactioning)
	assert.Nil(t, meta.LastSyncedAt)

	require.NoError(t, s.TouchLastSynced(ctx, "t1"))

	meta, err = s.GetTableSyncMetadata(ctx, "t1")
	require.NoError(t, err)
	assert.NotNil(t, meta.LastSyncedAt)
}

func TestRowRepository_TableLock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AcquireTableLock(ctx, "t1"))

	err := s.AcquireTableLock(ctx, "t1")
	assert.ErrorIs(t, err, ErrTableBusy)

	// another table is independent
	assert.NoError(t, s.AcquireTableLock(ctx, "t2"))

	require.NoError(t, s.ReleaseTableLock(ctx, "t1"))
	assert.NoError(t, s.AcquireTableLock(ctx, "t1"))
}

func TestRowRepository_AcquireTableLock_ClearsStaleRowClaims(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// a pass that died mid-push leaves its claims behind
	orphaned := restRow("r1")
	orphaned.SyncState = models.StateUpdating
	orphaned.Transactioning = true
	require.NoError(t, s.UpsertRow(ctx, "t1", orphaned))

	other := restRow("r1")
	other.SyncState = models.StateUpdating
	other.Transactioning = true
	require.NoError(t, s.UpsertRow(ctx, "t2", other))

	require.NoError(t, s.AcquireTableLock(ctx, "t1"))

	got, err := s.GetRow(ctx, "t1", "r1")
	require.NoError(t, err)
	assert.False(t, got.Transactioning)

	pending, err := s.GetPendingRows(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	// claims on other tables are not touched
	got, err = s.GetRow(ctx, "t2", "r1")
	require.NoError(t, err)
	assert.True(t, got.Transactioning)
}

func TestRowRepository_ReleaseStaleLocks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AcquireTableLock(ctx, "t1"))

	claimed := restRow("r1")
	claimed.SyncState = models.StateDeleting
	claimed.Transactioning = true
	require.NoError(t, s.UpsertRow(ctx, "t2", claimed))

	// simulates the startup reset after a crash with the guard still held
	require.NoError(t, s.ReleaseStaleLocks(ctx))

	assert.NoError(t, s.AcquireTableLock(ctx, "t1"))

	pending, err := s.GetPendingRows(ctx, "t2")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestRowRepository_PurgeTable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRow(ctx, "t1", restRow("r1")))
	require.NoError(t, s.SetTableDataETag(ctx, "t1", "d1"))
	require.NoError(t, s.SetColumnOrder(ctx, "t1", []string{"name"}))
	require.NoError(t, s.UpsertRow(ctx, "t2", restRow("r1")))

	require.NoError(t, s.PurgeTable(ctx, "t1"))

	_, err := s.GetRow(ctx, "t1", "r1")
	assert.ErrorIs(t, err, ErrRowNotFound)
	_, err = s.GetTableSyncMetadata(ctx, "t1")
	assert.ErrorIs(t, err, ErrTableNotFound)
	columns, err := s.GetColumnOrder(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, columns)

	// other tables stay intact
	_, err = s.GetRow(ctx, "t2", "r1")
	assert.NoError(t, err)
}

// ── column order ────────────────────────────────────────────────────────────

func TestRowRepository_ColumnOrderRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	columns, err := s.GetColumnOrder(ctx, "t1")
	require.NoError(t, err)
	assert.Empty(t, columns)

	require.NoError(t, s.SetColumnOrder(ctx, "t1", []string{"name", "age", "city"}))

	columns, err = s.GetColumnOrder(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "city"}, columns)

	// replacing drops the old order entirely
	require.NoError(t, s.SetColumnOrder(ctx, "t1", []string{"age", "name"}))

	columns, err = s.GetColumnOrder(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "name"}, columns)
}
