package adapter

import "errors"

// Sentinel errors mapped from transport-level failures. Callers match them
// with [errors.Is]; the wrapped message carries the server's response body.
var (
	// ErrNetwork indicates a connection-level failure (DNS, refused
	// connection, timeout). The affected row or table is left unchanged and
	// the operation is safe to retry by re-invoking the pass.
	ErrNetwork = errors.New("network failure")
	// ErrUnauthorized indicates rejected credentials (HTTP 401/403).
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrStaleETag indicates the server rejected a push because the supplied
	// rowETag no longer matches its current version (HTTP 409/412). The row
	// must be re-pulled and re-diffed rather than force-overwritten.
	ErrStaleETag = errors.New("stale etag")
	// ErrNotFound indicates the table or row does not exist on the server.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest indicates the server rejected the request payload.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError indicates a 5xx response from the row store.
	ErrInternalServerError = errors.New("internal server error")
)
