// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

// conflictService exposes materialized conflicts to the resolution UI and
// applies the chosen merge. Concordance is decided by exact raw-value
// equality; the display fields mirror the raw values so presentation layers
// never see a different partition than the resolver enforces.
type conflictService struct {
	rows   store.RowStore
	logger *logger.Logger
}

// NewConflictService constructs a [ConflictService] over the local row store.
func NewConflictService(rows store.RowStore, log *logger.Logger) ConflictService {
	log.Debug().Msg("creating conflict service")
	return &conflictService{
		rows:   rows,
		logger: log,
	}
}

// loadConflictPair fetches both sides of a materialized conflict. Any missing
// piece (row absent, not in conflict, no shadow) means there is nothing to
// resolve.
func (s *conflictService) loadConflictPair(ctx context.Context, tableID, rowID string) (local, shadow models.Row, err error) {
	local, err = s.rows.GetRow(ctx, tableID, rowID)
	if errors.Is(err, store.ErrRowNotFound) {
		return models.Row{}, models.Row{}, fmt.Errorf("%w: row %s", ErrNotInConflict, rowID)
	}
	if err != nil {
		return models.Row{}, models.Row{}, err
	}
	if local.SyncState != models.StateInConflict {
		return models.Row{}, models.Row{}, fmt.Errorf("%w: row %s is %s", ErrNotInConflict, rowID, local.SyncState)
	}

	shadow, err = s.rows.GetServerCopy(ctx, tableID, rowID)
	if errors.Is(err, store.ErrRowNotFound) {
		return models.Row{}, models.Row{}, fmt.Errorf("%w: row %s has no server copy", ErrNotInConflict, rowID)
	}
	if err != nil {
		return models.Row{}, models.Row{}, err
	}

	return local, shadow, nil
}

// columnKeys returns the table's user columns in defined order, extended with
// any key present on either side of the pair but missing from the stored
// order. The partition into conflict and concordant columns always covers
// exactly this set.
func (s *conflictService) columnKeys(ctx context.Context, tableID string, local, shadow models.Row) ([]string, error) {
	order, err := s.rows.GetColumnOrder(ctx, tableID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(order))
	keys := make([]string, 0, len(order))
	for _, key := range order {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	var extra []string
	for _, values := range []map[string]string{local.Values, shadow.Values} {
		for key := range values {
			if !seen[key] {
				seen[key] = true
				extra = append(extra, key)
			}
		}
	}
	sort.Strings(extra)

	return append(keys, extra...), nil
}

// ConflictColumns implements [ConflictService].
func (s *conflictService) ConflictColumns(ctx context.Context, tableID, rowID string) ([]models.ConflictColumn, error) {
	local, shadow, err := s.loadConflictPair(ctx, tableID, rowID)
	if err != nil {
		return nil, err
	}

	keys, err := s.columnKeys(ctx, tableID, local, shadow)
	if err != nil {
		return nil, err
	}

	var columns []models.ConflictColumn
	for _, key := range keys {
		localValue, serverValue := local.Values[key], shadow.Values[key]
		if localValue == serverValue {
			continue
		}
		columns = append(columns, models.ConflictColumn{
			Key:           key,
			LocalValue:    localValue,
			ServerValue:   serverValue,
			LocalDisplay:  localValue,
			ServerDisplay: serverValue,
		})
	}

	return columns, nil
}

// ConcordantColumns implements [ConflictService].
func (s *conflictService) ConcordantColumns(ctx context.Context, tableID, rowID string) ([]models.ConcordantColumn, error) {
	local, shadow, err := s.loadConflictPair(ctx, tableID, rowID)
	if err != nil {
		return nil, err
	}

	keys, err := s.columnKeys(ctx, tableID, local, shadow)
	if err != nil {
		return nil, err
	}

	var columns []models.ConcordantColumn
	for _, key := range keys {
		if local.Values[key] != shadow.Values[key] {
			continue
		}
		columns = append(columns, models.ConcordantColumn{
			Key:   key,
			Value: local.Values[key],
		})
	}

	return columns, nil
}

// ResolveConflict implements [ConflictService].
func (s *conflictService) ResolveConflict(ctx context.Context, tableID, rowID string, chosen map[string]string) error {
	log := logger.FromContext(ctx)

	local, shadow, err := s.loadConflictPair(ctx, tableID, rowID)
	if err != nil {
		return err
	}

	keys, err := s.columnKeys(ctx, tableID, local, shadow)
	if err != nil {
		return err
	}

	var missing []string
	for _, key := range keys {
		if local.Values[key] == shadow.Values[key] {
			continue
		}
		if _, ok := chosen[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: no choice for columns %s", ErrIncompleteResolution, strings.Join(missing, ", "))
	}

	// concordant values carry forward; chosen values override the rest
	merged := local.Clone().Values
	if merged == nil {
		merged = make(map[string]string, len(chosen))
	}
	if err = mergo.Merge(&merged, chosen, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge chosen values: %w", err)
	}

	resolved := local.Clone()
	resolved.Values = merged
	resolved.RowETag = shadow.RowETag
	resolved.SyncState = models.StateUpdating
	resolved.Deleted = false

	if err = s.rows.UpsertRow(ctx, tableID, resolved); err != nil {
		return err
	}
	if err = s.rows.DeleteServerCopy(ctx, tableID, rowID); err != nil {
		return err
	}

	log.Debug().Str("func", "*conflictService.ResolveConflict").
		Str("table", tableID).Str("row", rowID).Msg("conflict resolved")
	return nil
}
