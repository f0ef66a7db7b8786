package models

import "time"

// TableSyncMetadata is the locally persisted sync bookkeeping for one table:
// the last known server version tokens, the table-level transaction guard,
// and the time of the last successful pass.
type TableSyncMetadata struct {
	TableID        string
	SchemaETag     string
	DataETag       string
	Transactioning bool
	LastSyncedAt   *time.Time
}
