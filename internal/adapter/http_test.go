// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

func newTestClient(t *testing.T, serverURL string) *httpRowStoreClient {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	c, err := NewHTTPRowStoreClient(cfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpRowStoreClient)
}

func testResource() models.TableResource {
	return models.TableResource{
		TableID:    "t1",
		SchemaETag: "s1",
		DataETag:   "d1",
		SelfURI:    "/tables/t1",
		DataURI:    "/tables/t1/rows",
		DiffURI:    "/tables/t1/diff",
	}
}

// newFakeRowStore builds a chi router mimicking the remote row-store wire
// protocol for one table.
func newFakeRowStore(t *testing.T, configure func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	configure(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// ── CreateTable / GetTable ──────────────────────────────────────────────────

func TestCreateTable_Success(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Put("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "t1", chi.URLParam(req, "tableID"))

			var body struct {
				Columns []models.ColumnDefinition `json:"columns"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Len(t, body.Columns, 2)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(testResource())
		})
	})

	c := newTestClient(t, srv.URL)
	got, err := c.CreateTable(context.Background(), "t1", []models.ColumnDefinition{
		{ElementKey: "name", ElementType: "string"},
		{ElementKey: "age", ElementType: "integer"},
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", got.TableID)
	assert.Equal(t, "d1", got.DataETag)
}

func TestGetTable_SuccessAndCaches(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(testResource())
		})
	})

	c := newTestClient(t, srv.URL)
	got, err := c.GetTable(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "d1", got.DataETag)

	cached, ok := c.CachedResource("t1")
	require.True(t, ok)
	assert.Equal(t, got, cached)
}

func TestGetTable_NotFound(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no such table"))
		})
	})

	c := newTestClient(t, srv.URL)
	_, err := c.GetTable(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetUpdates ──────────────────────────────────────────────────────────────

func TestGetUpdates_PassesDataETagAndDecodesDiff(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}/diff", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "d1", req.URL.Query().Get("data_etag"))

			mod := models.IncomingModification{
				Rows: []models.SyncRow{
					{RowID: "r1", RowETag: "e2", Values: map[string]string{"name": "Bob"}},
				},
				TableDataETag: "d2",
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(mod)
		})
	})

	c := newTestClient(t, srv.URL)
	mod, err := c.GetUpdates(context.Background(), testResource(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "d2", mod.TableDataETag)
	require.Len(t, mod.Rows, 1)
	assert.Equal(t, "r1", mod.Rows[0].RowID)
	assert.Equal(t, "Bob", mod.Rows[0].Values["name"])
}

func TestGetUpdates_EmptyDiff(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}/diff", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.IncomingModification{TableDataETag: "d1"})
		})
	})

	c := newTestClient(t, srv.URL)
	mod, err := c.GetUpdates(context.Background(), testResource(), "d1")

	require.NoError(t, err)
	assert.Empty(t, mod.Rows)
	assert.Equal(t, "d1", mod.TableDataETag)
}

// ── PutRow ──────────────────────────────────────────────────────────────────

func TestPutRow_InsertAssignsETag(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Put("/tables/{tableID}/rows/{rowID}", func(w http.ResponseWriter, req *http.Request) {
			var row models.SyncRow
			require.NoError(t, json.NewDecoder(req.Body).Decode(&row))
			assert.Empty(t, row.RowETag) // insert: no optimistic base

			row.RowETag = "e1"
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(rowResponse{Row: row, DataETag: "d2"})
		})
	})

	c := newTestClient(t, srv.URL)
	row := models.SyncRow{RowID: "r1", Values: map[string]string{"name": "Alice"}}

	accepted, dataETag, err := c.PutRow(context.Background(), testResource(), row)

	require.NoError(t, err)
	assert.Equal(t, "e1", accepted.RowETag)
	assert.Equal(t, "d2", dataETag)
}

func TestPutRow_StaleETag(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Put("/tables/{tableID}/rows/{rowID}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte("row etag mismatch"))
		})
	})

	c := newTestClient(t, srv.URL)
	row := models.SyncRow{RowID: "r1", RowETag: "stale", Values: map[string]string{"name": "Alice"}}

	_, _, err := c.PutRow(context.Background(), testResource(), row)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStaleETag)
}

func TestPutRow_InvalidatesResourceCache(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(testResource())
		})
		r.Put("/tables/{tableID}/rows/{rowID}", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(rowResponse{DataETag: "d2"})
		})
	})

	c := newTestClient(t, srv.URL)
	res, err := c.GetTable(context.Background(), "t1")
	require.NoError(t, err)
	_, ok := c.CachedResource("t1")
	require.True(t, ok)

	_, _, err = c.PutRow(context.Background(), res, models.SyncRow{RowID: "r1"})
	require.NoError(t, err)

	_, ok = c.CachedResource("t1")
	assert.False(t, ok)
}

func TestPutRow_Unauthorized(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Put("/tables/{tableID}/rows/{rowID}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	})

	c := newTestClient(t, srv.URL)
	_, _, err := c.PutRow(context.Background(), testResource(), models.SyncRow{RowID: "r1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── DeleteRow / DeleteTable ─────────────────────────────────────────────────

func TestDeleteRow_PassesRowETag(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Delete("/tables/{tableID}/rows/{rowID}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "r1", chi.URLParam(req, "rowID"))
			assert.Equal(t, "e1", req.URL.Query().Get("row_etag"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(rowResponse{DataETag: "d2"})
		})
	})

	c := newTestClient(t, srv.URL)
	dataETag, err := c.DeleteRow(context.Background(), testResource(), "r1", "e1")

	require.NoError(t, err)
	assert.Equal(t, "d2", dataETag)
}

func TestDeleteTable_Success(t *testing.T) {
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Delete("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	c := newTestClient(t, srv.URL)
	require.NoError(t, c.DeleteTable(context.Background(), "t1"))
}

// ── transport failures ──────────────────────────────────────────────────────

func TestGetTable_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := newTestClient(t, srv.URL)
	_, err := c.GetTable(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestAuthedRequest_ExpiredJWTFailsFast(t *testing.T) {
	requestSeen := false
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			requestSeen = true
		})
	})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "client-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-key"))
	require.NoError(t, err)

	c := newTestClient(t, srv.URL)
	c.SetToken(signed)

	_, err = c.GetTable(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, requestSeen, "expired token must not reach the server")
}

func TestAuthedRequest_OpaqueTokenPassesThrough(t *testing.T) {
	var gotAuth string
	srv := newFakeRowStore(t, func(r chi.Router) {
		r.Get("/tables/{tableID}", func(w http.ResponseWriter, req *http.Request) {
			gotAuth = req.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(testResource())
		})
	})

	c := newTestClient(t, srv.URL)
	c.SetToken("opaque-token-value")

	_, err := c.GetTable(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token-value", gotAuth)
}
