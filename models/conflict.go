package models

// ConflictColumn is a user-defined column whose local and server values
// disagree for a row in conflict. The raw values are authoritative for
// resolution; the display fields exist for user-facing presentation and
// carry the raw value unless a renderer substitutes a formatted one.
type ConflictColumn struct {
	Key           string
	LocalValue    string
	ServerValue   string
	LocalDisplay  string
	ServerDisplay string
}

// ConcordantColumn is a user-defined column whose local and server values
// agree exactly; no resolution decision is needed for it.
type ConcordantColumn struct {
	Key   string
	Value string
}
