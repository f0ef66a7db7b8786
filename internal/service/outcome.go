package service

// Stats counts the row-level effects of one synchronization pass.
type Stats struct {
	Inserts   int
	Updates   int
	Deletes   int
	Conflicts int
}

// Outcome is the aggregate result of one synchronization pass over one table.
// Success is false when any row-level push failed; the failing rows and their
// errors are listed in FailedRows so the caller knows what needs attention.
// A failed pass leaves the local dataset consistent and is safe to retry.
type Outcome struct {
	TableID  string
	Success  bool
	DataETag string
	Stats    Stats
	// FailedRows maps row id to the push error that row hit. Rows listed
	// here keep their pre-push state and are retried on the next pass.
	FailedRows map[string]error
}
