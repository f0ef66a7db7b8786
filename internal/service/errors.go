package service

import "errors"

var (
	// ErrBusy is returned when a synchronization pass is already in flight
	// for the requested table.
	ErrBusy = errors.New("table synchronization already in progress")
	// ErrIncompleteResolution is returned when ResolveConflict was called
	// without a chosen value for every conflict column.
	ErrIncompleteResolution = errors.New("incomplete conflict resolution")
	// ErrNotInConflict is returned when conflict operations address a row
	// that has no materialized conflict.
	ErrNotInConflict = errors.New("row is not in conflict")
	// ErrRowLocked is returned when a local edit addresses a row currently
	// owned by an in-flight sync pass.
	ErrRowLocked = errors.New("row is owned by a sync pass")
)
