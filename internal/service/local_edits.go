package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/models"
)

// localEditService applies edits coming from the embedding application. The
// per-row transactioning flag is the only mutual exclusion against a running
// sync pass: an edit to a claimed row is refused, never queued.
type localEditService struct {
	rows   store.RowStore
	logger *logger.Logger
}

// NewLocalEditService constructs a [LocalEditService] over the local row
// store.
func NewLocalEditService(rows store.RowStore, log *logger.Logger) LocalEditService {
	log.Debug().Msg("creating local edit service")
	return &localEditService{
		rows:   rows,
		logger: log,
	}
}

// CreateLocalRow implements [LocalEditService].
func (s *localEditService) CreateLocalRow(ctx context.Context, tableID string, values map[string]string) (models.Row, error) {
	row := models.Row{
		RowID:     uuid.NewString(),
		SyncState: models.StateInserting,
		Values:    make(map[string]string, len(values)),
	}
	for key, value := range values {
		row.Values[key] = value
	}

	if err := s.rows.UpsertRow(ctx, tableID, row); err != nil {
		return models.Row{}, err
	}
	return row, nil
}

// UpdateLocalRow implements [LocalEditService].
func (s *localEditService) UpdateLocalRow(ctx context.Context, tableID, rowID string, values map[string]string) (models.Row, error) {
	row, err := s.rows.GetRow(ctx, tableID, rowID)
	if err != nil {
		return models.Row{}, err
	}
	if row.Transactioning {
		return models.Row{}, ErrRowLocked
	}

	nextState, err := row.SyncState.AfterLocalEdit()
	if err != nil {
		return models.Row{}, err
	}

	edited := row.Clone()
	edited.SyncState = nextState
	if edited.Values == nil {
		edited.Values = make(map[string]string, len(values))
	}
	for key, value := range values {
		edited.Values[key] = value
	}

	if err = s.rows.UpsertRow(ctx, tableID, edited); err != nil {
		return models.Row{}, err
	}
	return edited, nil
}

// DeleteLocalRow implements [LocalEditService].
func (s *localEditService) DeleteLocalRow(ctx context.Context, tableID, rowID string) error {
	row, err := s.rows.GetRow(ctx, tableID, rowID)
	if err != nil {
		return err
	}
	if row.Transactioning {
		return ErrRowLocked
	}

	nextState, err := row.SyncState.AfterLocalDelete()
	if err != nil {
		return err
	}

	marked := row.Clone()
	marked.SyncState = nextState
	marked.Deleted = true

	return s.rows.UpsertRow(ctx, tableID, marked)
}
