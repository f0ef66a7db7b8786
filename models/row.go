package models

// Row is the locally persisted representation of one synchronized table row.
//
// RowETag is the opaque server-assigned version token used as the optimistic
// concurrency base on pushes; it is empty until the server has accepted the
// row at least once and only ever advances through a server-accepted write.
//
// Transactioning marks the row as owned by an in-flight sync pass. Local edit
// paths must refuse rows with Transactioning set; the sync pass clears it on
// every exit path, success or failure.
type Row struct {
	RowID          string
	RowETag        string
	SyncState      SyncState
	Transactioning bool

	// ServerCopy distinguishes the shadow copy of the server's version that
	// is stored alongside a local row in conflict. At most one server copy
	// exists per RowID, and only while the local row is in StateInConflict.
	ServerCopy bool

	FormID             string
	Locale             string
	SavepointType      string
	SavepointTimestamp string
	SavepointCreator   string
	FilterType         string
	FilterValue        string

	Deleted bool

	// Values maps user-defined column keys to their string-encoded values.
	Values map[string]string
}

// Clone returns a deep copy of the row. Values is copied so that callers can
// never alias the map held by the store's live objects.
func (r Row) Clone() Row {
	cp := r
	if r.Values != nil {
		cp.Values = make(map[string]string, len(r.Values))
		for k, v := range r.Values {
			cp.Values[k] = v
		}
	}
	return cp
}

// ToSyncRow converts the local row into its wire representation.
func (r Row) ToSyncRow() SyncRow {
	return SyncRow{
		RowID:              r.RowID,
		RowETag:            r.RowETag,
		Deleted:            r.Deleted,
		FormID:             r.FormID,
		Locale:             r.Locale,
		SavepointType:      r.SavepointType,
		SavepointTimestamp: r.SavepointTimestamp,
		SavepointCreator:   r.SavepointCreator,
		FilterType:         r.FilterType,
		FilterValue:        r.FilterValue,
		Values:             r.Clone().Values,
	}
}

// RowFromSyncRow materializes a local row from a server diff entry. The
// resulting row is at rest: the server's version is by definition the base
// version until a local edit happens.
func RowFromSyncRow(sr SyncRow) Row {
	values := make(map[string]string, len(sr.Values))
	for k, v := range sr.Values {
		values[k] = v
	}
	return Row{
		RowID:              sr.RowID,
		RowETag:            sr.RowETag,
		SyncState:          StateRest,
		Deleted:            sr.Deleted,
		FormID:             sr.FormID,
		Locale:             sr.Locale,
		SavepointType:      sr.SavepointType,
		SavepointTimestamp: sr.SavepointTimestamp,
		SavepointCreator:   sr.SavepointCreator,
		FilterType:         sr.FilterType,
		FilterValue:        sr.FilterValue,
		Values:             values,
	}
}
