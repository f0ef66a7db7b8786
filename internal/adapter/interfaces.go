// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with a remote row-store service.
//
// The primary abstraction is [RemoteTableClient], which decouples the sync
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRowStoreClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrStaleETag] for 409/412, [ErrUnauthorized] for
// 401/403, [ErrNetwork] for connection-level failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-table-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteTableClient defines transport-agnostic communication with one remote
// row store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// All calls are stateless from the caller's perspective: each either returns
// a typed result or a typed failure. The implementation may cache
// [models.TableResource] snapshots internally, but must invalidate the cache
// whenever a push succeeds or the server reports a stale ETag, so callers
// always observe the freshest known resource on the next fetch.
type RemoteTableClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CreateTable creates the table on the server with the given
	// user-defined columns via PUT /tables/{tableId}. Returns the server's
	// [models.TableResource] for the freshly created table.
	CreateTable(ctx context.Context, tableID string, columns []models.ColumnDefinition) (models.TableResource, error)

	// GetTable fetches the current [models.TableResource] for tableID,
	// refreshing the internal resource cache.
	GetTable(ctx context.Context, tableID string) (models.TableResource, error)

	// GetUpdates performs a diff pull: all rows changed since dataETag, in
	// server order, plus the table's new dataETag. An empty dataETag
	// requests the full row set. An empty Rows slice is a valid "nothing
	// changed" result.
	GetUpdates(ctx context.Context, resource models.TableResource, dataETag string) (models.IncomingModification, error)

	// PutRow inserts or updates one row via PUT {dataUri}/{rowId}. The row's
	// RowETag is the optimistic-concurrency base: empty for inserts, the
	// last known server version for updates. Returns the accepted row
	// (carrying the server-assigned rowETag) and the table's new dataETag.
	// Returns [ErrStaleETag] (wrapped) if the server rejects the base
	// version.
	PutRow(ctx context.Context, resource models.TableResource, row models.SyncRow) (models.SyncRow, string, error)

	// DeleteRow removes one row via DELETE {dataUri}/{rowId}, subject to the
	// same optimistic-concurrency check as PutRow. Returns the table's new
	// dataETag.
	DeleteRow(ctx context.Context, resource models.TableResource, rowID, rowETag string) (string, error)

	// DeleteTable removes the whole table from the server.
	DeleteTable(ctx context.Context, tableID string) error
}
