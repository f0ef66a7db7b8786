package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/models"
)

type httpRowStoreClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string

	resMu     sync.Mutex
	resources map[string]models.TableResource
}

// NewHTTPRowStoreClient constructs an HTTP/REST implementation of
// [RemoteTableClient]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRowStoreClient(adapterCfg config.ClientAdapter, log *logger.Logger) (RemoteTableClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpRowStoreClient{
		client:    cli,
		logger:    log,
		resources: make(map[string]models.TableResource),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteTableClient]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// requests.
func (h *httpRowStoreClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteTableClient]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpRowStoreClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateTable implements [RemoteTableClient]. It PUTs the column definitions
// to PUT /tables/{tableId} and caches the returned resource.
func (h *httpRowStoreClient) CreateTable(ctx context.Context, tableID string, columns []models.ColumnDefinition) (models.TableResource, error) {
	var resource models.TableResource

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TableResource{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"columns": columns}).
		SetResult(&resource).
		Put("/tables/" + url.PathEscape(tableID))
	if err != nil {
		return models.TableResource{}, fmt.Errorf("%w: create table request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TableResource{}, err
	}

	h.cacheResource(resource)
	return resource, nil
}

// GetTable implements [RemoteTableClient]. It GETs /tables/{tableId} and
// refreshes the resource cache. The freshly fetched copy is always preferred
// over any cached one.
func (h *httpRowStoreClient) GetTable(ctx context.Context, tableID string) (models.TableResource, error) {
	var resource models.TableResource

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.TableResource{}, err
	}

	resp, err := req.
		SetResult(&resource).
		Get("/tables/" + url.PathEscape(tableID))
	if err != nil {
		return models.TableResource{}, fmt.Errorf("%w: get table request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TableResource{}, err
	}

	h.cacheResource(resource)
	return resource, nil
}

// GetUpdates implements [RemoteTableClient]. It GETs the table's diff URI
// with the last known dataETag and decodes the ordered diff.
func (h *httpRowStoreClient) GetUpdates(ctx context.Context, resource models.TableResource, dataETag string) (models.IncomingModification, error) {
	var mod models.IncomingModification

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.IncomingModification{}, err
	}
	if dataETag != "" {
		req.SetQueryParam("data_etag", dataETag)
	}

	resp, err := req.
		SetResult(&mod).
		Get(resource.DiffURI)
	if err != nil {
		return models.IncomingModification{}, fmt.Errorf("%w: diff pull request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IncomingModification{}, err
	}

	return mod, nil
}

// rowResponse is the server's reply to a row-level PUT or DELETE: the
// accepted row (PUT only) and the table's advanced dataETag.
type rowResponse struct {
	Row      models.SyncRow `json:"row"`
	DataETag string         `json:"data_etag"`
}

// PutRow implements [RemoteTableClient]. The same call serves inserts and
// updates: the remote protocol distinguishes them only by presence of a prior
// rowETag in the body. The cached resource for the table is invalidated on
// every accepted write and on a stale-ETag rejection, so the next GetTable
// observes the server's authoritative state.
func (h *httpRowStoreClient) PutRow(ctx context.Context, resource models.TableResource, row models.SyncRow) (models.SyncRow, string, error) {
	var result rowResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SyncRow{}, "", err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(row).
		SetResult(&result).
		Put(resource.DataURI + "/" + url.PathEscape(row.RowID))
	if err != nil {
		return models.SyncRow{}, "", fmt.Errorf("%w: put row request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.invalidateResource(resource.TableID)
		return models.SyncRow{}, "", err
	}

	h.invalidateResource(resource.TableID)
	return result.Row, result.DataETag, nil
}

// DeleteRow implements [RemoteTableClient]. The row's last known rowETag is
// passed as a query parameter so the server can apply the same optimistic
// concurrency check as PutRow.
func (h *httpRowStoreClient) DeleteRow(ctx context.Context, resource models.TableResource, rowID, rowETag string) (string, error) {
	var result rowResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}
	if rowETag != "" {
		req.SetQueryParam("row_etag", rowETag)
	}

	resp, err := req.
		SetResult(&result).
		Delete(resource.DataURI + "/" + url.PathEscape(rowID))
	if err != nil {
		return "", fmt.Errorf("%w: delete row request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.invalidateResource(resource.TableID)
		return "", err
	}

	h.invalidateResource(resource.TableID)
	return result.DataETag, nil
}

// DeleteTable implements [RemoteTableClient].
func (h *httpRowStoreClient) DeleteTable(ctx context.Context, tableID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/tables/" + url.PathEscape(tableID))
	if err != nil {
		return fmt.Errorf("%w: delete table request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.invalidateResource(tableID)
	return nil
}

// authedRequest prepares a request with the bearer token attached. If the
// token is a JWT with an expiry claim that has already passed, the call fails
// fast with [ErrUnauthorized] instead of burning a round trip on a guaranteed
// 401.
func (h *httpRowStoreClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		if err := checkTokenExpiry(token); err != nil {
			return nil, err
		}
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

func checkTokenExpiry(token string) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Opaque (non-JWT) tokens are passed through untouched; the server
		// is the authority on their validity.
		return nil
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return fmt.Errorf("%w: bearer token expired at %s", ErrUnauthorized, exp.Format(time.RFC3339))
	}

	return nil
}

func (h *httpRowStoreClient) cacheResource(resource models.TableResource) {
	if resource.TableID == "" {
		return
	}
	h.resMu.Lock()
	defer h.resMu.Unlock()
	h.resources[resource.TableID] = resource
}

func (h *httpRowStoreClient) invalidateResource(tableID string) {
	h.resMu.Lock()
	defer h.resMu.Unlock()
	delete(h.resources, tableID)
}

// CachedResource returns the last fetched resource snapshot for tableID, if
// the cache still holds one. Exposed for observability; the sync coordinator
// always works from a fresh GetTable.
func (h *httpRowStoreClient) CachedResource(tableID string) (models.TableResource, bool) {
	h.resMu.Lock()
	defer h.resMu.Unlock()
	res, ok := h.resources[tableID]
	return res, ok
}
