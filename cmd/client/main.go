package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-table-sync/internal/adapter"
	"github.com/MKhiriev/go-table-sync/internal/config"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/service"
	"github.com/MKhiriev/go-table-sync/internal/store"
	"github.com/MKhiriev/go-table-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-table-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	remote, err := adapter.NewHTTPRowStoreClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote table client")
	}
	remote.SetToken(cfg.App.AuthToken)

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrate local storage")
	}

	rows := store.NewRowRepository(db, log)
	if err = rows.ReleaseStaleLocks(ctx); err != nil {
		log.Fatal().Err(err).Msg("recover stale sync locks")
	}

	services := service.NewServices(rows, remote, cfg.App, log)

	syncWorker := workers.NewSyncWorker(services.Sync, cfg.Workers, log)
	workers.NewWorkers(syncWorker).Run(ctx)

	log.Info().Msg("shutting down")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
