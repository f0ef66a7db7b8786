package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

// rowRepository is the SQLite-backed implementation of [RowStore].
//
// Row values are stored as a JSON object in the values_json column; everything
// the sync machinery needs to filter on (state, transactioning, server_copy)
// lives in dedicated columns so pending-row selection stays a plain WHERE.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type rowRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRowRepository constructs a [RowStore] backed by the provided database
// connection and logger.
func NewRowRepository(db *DB, logger *logger.Logger) RowStore {
	logger.Debug().Msg("creating row repository")
	return &rowRepository{
		db:     db,
		logger: logger,
	}
}

// rowColumns is the SELECT list shared by all row queries; scanRow scans in
// this exact order.
var rowColumns = []string{
	"row_id",
	"row_etag",
	"sync_state",
	"transactioning",
	"server_copy",
	"form_id",
	"locale",
	"savepoint_type",
	"savepoint_timestamp",
	"savepoint_creator",
	"filter_type",
	"filter_value",
	"deleted",
	"values_json",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(s rowScanner) (models.Row, error) {
	var (
		row        models.Row
		state      string
		valuesJSON string
	)

	err := s.Scan(
		&row.RowID,
		&row.RowETag,
		&state,
		&row.Transactioning,
		&row.ServerCopy,
		&row.FormID,
		&row.Locale,
		&row.SavepointType,
		&row.SavepointTimestamp,
		&row.SavepointCreator,
		&row.FilterType,
		&row.FilterValue,
		&row.Deleted,
		&valuesJSON,
	)
	if err != nil {
		return models.Row{}, err
	}

	row.SyncState, err = models.ParseSyncState(state)
	if err != nil {
		return models.Row{}, fmt.Errorf("stored row has invalid state: %w", err)
	}

	if valuesJSON != "" {
		if err = json.Unmarshal([]byte(valuesJSON), &row.Values); err != nil {
			return models.Row{}, fmt.Errorf("decode row values: %w", err)
		}
	}
	if row.Values == nil {
		row.Values = make(map[string]string)
	}

	return row, nil
}

func (r *rowRepository) getSlot(ctx context.Context, tableID, rowID string, serverCopy bool) (models.Row, error) {
	log := logger.FromContext(ctx)

	row, err := scanRow(r.db.QueryRowContext(ctx, getRowBySlot, tableID, rowID, serverCopy))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Row{}, ErrRowNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.getSlot").Msg("error: scanning error")
		return models.Row{}, err
	}

	return row, nil
}

// GetRow returns the local copy of the addressed row.
func (r *rowRepository) GetRow(ctx context.Context, tableID, rowID string) (models.Row, error) {
	return r.getSlot(ctx, tableID, rowID, false)
}

// GetServerCopy returns the conflict shadow copy of the addressed row.
func (r *rowRepository) GetServerCopy(ctx context.Context, tableID, rowID string) (models.Row, error) {
	return r.getSlot(ctx, tableID, rowID, true)
}

func (r *rowRepository) selectRows(ctx context.Context, pred sq.Eq) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(rowColumns...).
		From("rows").
		Where(pred).
		OrderBy("row_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build row select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.selectRows").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var result []models.Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			log.Err(err).Str("func", "*rowRepository.selectRows").Msg("error: scanning error")
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// GetRowsByState returns local rows in the given state that are not currently
// claimed by a sync pass.
func (r *rowRepository) GetRowsByState(ctx context.Context, tableID string, state models.SyncState) ([]models.Row, error) {
	return r.selectRows(ctx, sq.Eq{
		"table_id":       tableID,
		"sync_state":     string(state),
		"transactioning": false,
		"server_copy":    false,
	})
}

// GetPendingRows returns unclaimed local rows awaiting a push: inserting,
// updating or deleting.
func (r *rowRepository) GetPendingRows(ctx context.Context, tableID string) ([]models.Row, error) {
	return r.selectRows(ctx, sq.Eq{
		"table_id": tableID,
		"sync_state": []string{
			string(models.StateInserting),
			string(models.StateUpdating),
			string(models.StateDeleting),
		},
		"transactioning": false,
		"server_copy":    false,
	})
}

// UpsertRow writes the row into its slot, replacing any previous version.
func (r *rowRepository) UpsertRow(ctx context.Context, tableID string, row models.Row) error {
	log := logger.FromContext(ctx)

	values := row.Values
	if values == nil {
		values = map[string]string{}
	}
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode row values: %w", err)
	}

	_, err = r.db.ExecContext(ctx, upsertRow,
		tableID,
		row.RowID,
		row.ServerCopy,
		row.RowETag,
		string(row.SyncState),
		row.Transactioning,
		row.FormID,
		row.Locale,
		row.SavepointType,
		row.SavepointTimestamp,
		row.SavepointCreator,
		row.FilterType,
		row.FilterValue,
		row.Deleted,
		string(valuesJSON),
	)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.UpsertRow").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *rowRepository) deleteSlot(ctx context.Context, tableID, rowID string, serverCopy bool) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteRowBySlot, tableID, rowID, serverCopy); err != nil {
		log.Err(err).Str("func", "*rowRepository.deleteSlot").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// DeleteRow removes the local copy of a row. Deleting an absent row is not an
// error.
func (r *rowRepository) DeleteRow(ctx context.Context, tableID, rowID string) error {
	return r.deleteSlot(ctx, tableID, rowID, false)
}

// DeleteServerCopy removes the conflict shadow copy of a row.
func (r *rowRepository) DeleteServerCopy(ctx context.Context, tableID, rowID string) error {
	return r.deleteSlot(ctx, tableID, rowID, true)
}

// SetTransactioning flips the per-row claim flag for the given local rows in
// a single statement.
func (r *rowRepository) SetTransactioning(ctx context.Context, tableID string, rowIDs []string, transactioning bool) error {
	log := logger.FromContext(ctx)

	if len(rowIDs) == 0 {
		return nil
	}

	query, args, err := sq.Update("rows").
		Set("transactioning", transactioning).
		Where(sq.Eq{
			"table_id":    tableID,
			"row_id":      rowIDs,
			"server_copy": false,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build transactioning update: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*rowRepository.SetTransactioning").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetTableSyncMetadata returns the sync bookkeeping for a table.
func (r *rowRepository) GetTableSyncMetadata(ctx context.Context, tableID string) (models.TableSyncMetadata, error) {
	log := logger.FromContext(ctx)

	var (
		meta         models.TableSyncMetadata
		lastSyncedAt sql.NullTime
	)

	row := r.db.QueryRowContext(ctx, getTableSync, tableID)
	err := row.Scan(&meta.TableID, &meta.SchemaETag, &meta.DataETag, &meta.Transactioning, &lastSyncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TableSyncMetadata{}, ErrTableNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.GetTableSyncMetadata").Msg("error: scanning error")
		return models.TableSyncMetadata{}, err
	}

	if lastSyncedAt.Valid {
		t := lastSyncedAt.Time
		meta.LastSyncedAt = &t
	}

	return meta, nil
}

// updateTableSync runs a table_sync UPDATE whose final placeholder is the
// table_id, creating the bookkeeping record first so a never-synced table can
// be written to on first touch.
func (r *rowRepository) updateTableSync(ctx context.Context, funcName, tableID, query string, args ...any) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, ensureTableTracked, tableID); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, append(args, tableID)...); err != nil {
		log.Err(err).Str("func", funcName).Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// SetTableDataETag records the last fully applied server data version.
func (r *rowRepository) SetTableDataETag(ctx context.Context, tableID, dataETag string) error {
	return r.updateTableSync(ctx, "*rowRepository.SetTableDataETag", tableID, setTableDataETag, dataETag)
}

// SetTableSchemaETag records the server schema version for a table.
func (r *rowRepository) SetTableSchemaETag(ctx context.Context, tableID, schemaETag string) error {
	return r.updateTableSync(ctx, "*rowRepository.SetTableSchemaETag", tableID, setTableSchemaETag, schemaETag)
}

// TouchLastSynced stamps the table with the current time.
func (r *rowRepository) TouchLastSynced(ctx context.Context, tableID string) error {
	return r.updateTableSync(ctx, "*rowRepository.TouchLastSynced", tableID, touchLastSynced)
}

// AcquireTableLock atomically takes the table-level transaction guard. The
// guard is a conditional UPDATE; zero affected rows means another pass holds
// the table and the caller gets [ErrTableBusy].
func (r *rowRepository) AcquireTableLock(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, ensureTableTracked, tableID); err != nil {
		log.Err(err).Str("func", "*rowRepository.AcquireTableLock").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	res, err := r.db.ExecContext(ctx, acquireTableLock, tableID)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.AcquireTableLock").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTableBusy
	}

	// holding the guard means no pass is in flight for this table, so any
	// row claim found now was left behind by a killed pass
	if _, err = r.db.ExecContext(ctx, clearTableClaims, tableID); err != nil {
		log.Err(err).Str("func", "*rowRepository.AcquireTableLock").Msg("error: exec error")
		_, _ = r.db.ExecContext(ctx, releaseTableLock, tableID)
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ReleaseTableLock drops the table-level transaction guard. Releasing an
// unheld guard is not an error.
func (r *rowRepository) ReleaseTableLock(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, releaseTableLock, tableID); err != nil {
		log.Err(err).Str("func", "*rowRepository.ReleaseTableLock").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// ReleaseStaleLocks clears every table guard and row claim in one
// transaction. Both are durable in SQLite, so a process killed mid-pass
// leaves them held; the composition root calls this once at startup, before
// any pass can run.
func (r *rowRepository) ReleaseStaleLocks(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.ReleaseStaleLocks").Msg("error: begin tx error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	for _, query := range []string{releaseAllTableLocks, clearAllClaims} {
		if _, err = tx.ExecContext(ctx, query); err != nil {
			log.Err(err).Str("func", "*rowRepository.ReleaseStaleLocks").Msg("error: exec error")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}

// PurgeTable drops every local trace of a table in one transaction.
func (r *rowRepository) PurgeTable(ctx context.Context, tableID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.PurgeTable").Msg("error: begin tx error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	for _, query := range []string{purgeTableRows, clearColumnOrder, purgeTableSync} {
		if _, err = tx.ExecContext(ctx, query, tableID); err != nil {
			log.Err(err).Str("func", "*rowRepository.PurgeTable").Msg("error: exec error")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}

// GetColumnOrder returns the user-defined column keys of a table in display
// order.
func (r *rowRepository) GetColumnOrder(ctx context.Context, tableID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getColumnOrder, tableID)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.GetColumnOrder").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "*rowRepository.GetColumnOrder").Msg("error: scanning error")
			return nil, err
		}
		columns = append(columns, key)
	}

	return columns, rows.Err()
}

// SetColumnOrder replaces the stored column order for a table in one
// transaction.
func (r *rowRepository) SetColumnOrder(ctx context.Context, tableID string, columns []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*rowRepository.SetColumnOrder").Msg("error: begin tx error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearColumnOrder, tableID); err != nil {
		log.Err(err).Str("func", "*rowRepository.SetColumnOrder").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	for position, key := range columns {
		if _, err = tx.ExecContext(ctx, insertColumn, tableID, key, position); err != nil {
			log.Err(err).Str("func", "*rowRepository.SetColumnOrder").Msg("error: exec error")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}
