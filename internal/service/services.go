package service

import (
	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/store"
)

type Services struct {
	Sync      TableSynchronizer
	Conflicts ConflictService
	Edits     LocalEditService
}

func NewServices(rows store.RowStore, remote adapter.RemoteTableClient, appCfg config.ClientApp, log *logger.Logger) *Services {
	return &Services{
		Sync:      NewSyncCoordinator(rows, remote, appCfg, log),
		Conflicts: NewConflictService(rows, log),
		Edits:     NewLocalEditService(rows, log),
	}
}
