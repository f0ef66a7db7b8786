package models

// SyncRow is the serialized unit exchanged with the remote row store. It is
// intentionally decoupled from [Row] so storage-layer concerns (sync state,
// transactioning, server copies) never leak into the wire format.
type SyncRow struct {
	RowID              string            `json:"id"`
	RowETag            string            `json:"row_etag,omitempty"`
	Deleted            bool              `json:"deleted"`
	FormID             string            `json:"form_id,omitempty"`
	Locale             string            `json:"locale,omitempty"`
	SavepointType      string            `json:"savepoint_type,omitempty"`
	SavepointTimestamp string            `json:"savepoint_timestamp,omitempty"`
	SavepointCreator   string            `json:"savepoint_creator,omitempty"`
	FilterType         string            `json:"filter_type,omitempty"`
	FilterValue        string            `json:"filter_value,omitempty"`
	Values             map[string]string `json:"values"`
}

// ColumnDefinition describes one user-defined column when creating a table on
// the server.
type ColumnDefinition struct {
	ElementKey  string `json:"element_key"`
	ElementType string `json:"element_type"`
}

// TableResource is the server's immutable snapshot of one table: its version
// tokens and the URIs for row and diff access. The coordinator always trusts
// the most recently fetched copy over any cached one.
type TableResource struct {
	TableID    string `json:"table_id"`
	SchemaETag string `json:"schema_etag"`
	DataETag   string `json:"data_etag"`
	SelfURI    string `json:"self_uri"`
	DataURI    string `json:"data_uri"`
	DiffURI    string `json:"diff_uri"`
}

// Modification is the result of one push: the new rowETag for every row the
// server accepted, plus the table's new dataETag.
type Modification struct {
	RowETags      map[string]string `json:"row_etags"`
	TableDataETag string            `json:"data_etag"`
}

// IncomingModification is the result of one diff pull: the rows changed since
// a given dataETag, in server order, plus the new dataETag. An empty Rows
// slice is a valid "nothing changed" result.
type IncomingModification struct {
	Rows          []SyncRow `json:"rows"`
	TableDataETag string    `json:"data_etag"`
}
