package store

import "errors"

var (
	// ErrRowNotFound is returned when the addressed row slot does not exist.
	ErrRowNotFound = errors.New("row not found")
	// ErrTableNotFound is returned when a table has no local sync metadata.
	ErrTableNotFound = errors.New("table not found")
	// ErrTableBusy is returned by AcquireTableLock when another sync pass
	// already holds the table's transaction guard.
	ErrTableBusy = errors.New("table is busy")
)
