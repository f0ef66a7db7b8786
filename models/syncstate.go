// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// SyncState describes where a row sits in its synchronization lifecycle.
//
// Transitions are driven from three places only: local edits (via the
// service-layer edit helpers), the pull side of a sync pass, and the conflict
// resolver. The push side of a sync pass never changes state except to settle
// a pending row into StateRest (or remove it entirely for confirmed deletes).
type SyncState string

const (
	// StateRest means the row has no pending local change.
	StateRest SyncState = "rest"
	// StateInserting means the row was created locally and the server has
	// never confirmed it. Its RowETag is empty.
	StateInserting SyncState = "inserting"
	// StateUpdating means the row was modified locally on top of a known
	// server version (RowETag holds the optimistic-concurrency base).
	StateUpdating SyncState = "updating"
	// StateDeleting means the row is marked for removal but the server has
	// not yet confirmed the delete.
	StateDeleting SyncState = "deleting"
	// StateInConflict means local and remote versions diverged and a merge
	// decision is required before the row can be pushed again.
	StateInConflict SyncState = "in_conflict"
)

var ErrIllegalTransition = errors.New("illegal sync state transition")

// ParseSyncState converts a stored string into a SyncState.
func ParseSyncState(s string) (SyncState, error) {
	switch st := SyncState(s); st {
	case StateRest, StateInserting, StateUpdating, StateDeleting, StateInConflict:
		return st, nil
	default:
		return "", fmt.Errorf("unknown sync state %q", s)
	}
}

// Pending reports whether the row carries an uncommitted local change that a
// sync pass should push to the server.
func (s SyncState) Pending() bool {
	return s == StateInserting || s == StateUpdating || s == StateDeleting
}

// AfterLocalEdit returns the state a row enters after its values are edited
// locally. Editing an inserting row keeps it inserting (the server has never
// seen it, so there is no base version to record). Rows in conflict must be
// resolved first.
func (s SyncState) AfterLocalEdit() (SyncState, error) {
	switch s {
	case StateRest:
		return StateUpdating, nil
	case StateInserting:
		return StateInserting, nil
	case StateUpdating:
		return StateUpdating, nil
	case StateDeleting, StateInConflict:
		return "", fmt.Errorf("%w: edit of %s row", ErrIllegalTransition, s)
	default:
		return "", fmt.Errorf("%w: edit of unknown state %q", ErrIllegalTransition, s)
	}
}

// AfterLocalDelete returns the state a row enters after a local delete
// request. Rows in conflict cannot be deleted until resolved.
func (s SyncState) AfterLocalDelete() (SyncState, error) {
	switch s {
	case StateRest, StateInserting, StateUpdating, StateDeleting:
		return StateDeleting, nil
	case StateInConflict:
		return "", fmt.Errorf("%w: delete of %s row", ErrIllegalTransition, s)
	default:
		return "", fmt.Errorf("%w: delete of unknown state %q", ErrIllegalTransition, s)
	}
}
