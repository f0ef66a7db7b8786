package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Clone_DoesNotAliasValues(t *testing.T) {
	orig := Row{
		RowID:     "r1",
		SyncState: StateRest,
		Values:    map[string]string{"name": "Alice"},
	}

	cp := orig.Clone()
	cp.Values["name"] = "Bob"

	assert.Equal(t, "Alice", orig.Values["name"])
}

func TestRow_ToSyncRow_RoundTrip(t *testing.T) {
	row := Row{
		RowID:              "r1",
		RowETag:            "e1",
		SyncState:          StateUpdating,
		FormID:             "form-1",
		Locale:             "en_US",
		SavepointType:      "COMPLETE",
		SavepointTimestamp: "2026-08-28T10:00:00Z",
		SavepointCreator:   "alice",
		FilterType:         "DEFAULT",
		FilterValue:        "",
		Values:             map[string]string{"name": "Alice", "age": "30"},
	}

	back := RowFromSyncRow(row.ToSyncRow())

	// Sync state and transactioning are local-only concerns: a row
	// materialized from the wire always comes back at rest.
	assert.Equal(t, StateRest, back.SyncState)
	assert.False(t, back.Transactioning)

	assert.Equal(t, row.RowID, back.RowID)
	assert.Equal(t, row.RowETag, back.RowETag)
	assert.Equal(t, row.FormID, back.FormID)
	assert.Equal(t, row.Locale, back.Locale)
	assert.Equal(t, row.SavepointType, back.SavepointType)
	assert.Equal(t, row.SavepointTimestamp, back.SavepointTimestamp)
	assert.Equal(t, row.SavepointCreator, back.SavepointCreator)
	assert.Equal(t, row.Values, back.Values)
}

func TestRowFromSyncRow_CopiesValues(t *testing.T) {
	sr := SyncRow{RowID: "r1", Values: map[string]string{"name": "Alice"}}

	row := RowFromSyncRow(sr)
	require.NotNil(t, row.Values)
	row.Values["name"] = "Bob"

	assert.Equal(t, "Alice", sr.Values["name"])
}
