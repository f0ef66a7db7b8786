// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getRowBySlot = `
		SELECT
			row_id,
			row_etag,
			sync_state,
			transactioning,
			server_copy,
			form_id,
			locale,
			savepoint_type,
			savepoint_timestamp,
			savepoint_creator,
			filter_type,
			filter_value,
			deleted,
			values_json
		FROM rows
		WHERE table_id = ? AND row_id = ? AND server_copy = ?;`

	upsertRow = `
		INSERT INTO rows (
			table_id,
			row_id,
			server_copy,
			row_etag,
			sync_state,
			transactioning,
			form_id,
			locale,
			savepoint_type,
			savepoint_timestamp,
			savepoint_creator,
			filter_type,
			filter_value,
			deleted,
			values_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (table_id, row_id, server_copy) DO UPDATE SET
			row_etag            = excluded.row_etag,
			sync_state          = excluded.sync_state,
			transactioning      = excluded.transactioning,
			form_id             = excluded.form_id,
			locale              = excluded.locale,
			savepoint_type      = excluded.savepoint_type,
			savepoint_timestamp = excluded.savepoint_timestamp,
			savepoint_creator   = excluded.savepoint_creator,
			filter_type         = excluded.filter_type,
			filter_value        = excluded.filter_value,
			deleted             = excluded.deleted,
			values_json         = excluded.values_json;`

	deleteRowBySlot = `
		DELETE FROM rows
		WHERE table_id = ? AND row_id = ? AND server_copy = ?;`

	ensureTableTracked = `
		INSERT INTO table_sync (table_id) VALUES (?)
		ON CONFLICT (table_id) DO NOTHING;`

	getTableSync = `
		SELECT
			table_id,
			schema_etag,
			data_etag,
			transactioning,
			last_synced_at
		FROM table_sync
		WHERE table_id = ?;`

	setTableDataETag = `
		UPDATE table_sync
		SET data_etag = ?
		WHERE table_id = ?;`

	setTableSchemaETag = `
		UPDATE table_sync
		SET schema_etag = ?
		WHERE table_id = ?;`

	touchLastSynced = `
		UPDATE table_sync
		SET last_synced_at = CURRENT_TIMESTAMP
		WHERE table_id = ?;`

	acquireTableLock = `
		UPDATE table_sync
		SET transactioning = 1
		WHERE table_id = ? AND transactioning = 0;`

	releaseTableLock = `
		UPDATE table_sync
		SET transactioning = 0
		WHERE table_id = ?;`

	clearTableClaims = `
		UPDATE rows
		SET transactioning = 0
		WHERE table_id = ? AND transactioning = 1;`

	releaseAllTableLocks = `
		UPDATE table_sync
		SET transactioning = 0
		WHERE transactioning = 1;`

	clearAllClaims = `
		UPDATE rows
		SET transactioning = 0
		WHERE transactioning = 1;`

	purgeTableRows = `
		DELETE FROM rows
		WHERE table_id = ?;`

	purgeTableSync = `
		DELETE FROM table_sync
		WHERE table_id = ?;`

	getColumnOrder = `
		SELECT column_key
		FROM table_columns
		WHERE table_id = ?
		ORDER BY position;`

	clearColumnOrder = `
		DELETE FROM table_columns
		WHERE table_id = ?;`

	insertColumn = `
		INSERT INTO table_columns (table_id, column_key, position)
		VALUES (?, ?, ?);`
)
