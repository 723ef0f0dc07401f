package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/client"
	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/ledger"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/session"
	"github.com/MKhiriev/go-infaq/internal/sheets"
	"github.com/MKhiriev/go-infaq/internal/store"
	"github.com/MKhiriev/go-infaq/internal/tui"
	"github.com/MKhiriev/go-infaq/internal/workers"
	"github.com/MKhiriev/go-infaq/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("infaq-client", cfg.App.LogFile)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	backend, err := adapter.NewLazyBackend(cfg.Backend, storages.SessionRepository, log).Get()
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	bridge := sheets.NewBridge(cfg.Sheets, log)
	sessionManager := session.NewManager(backend, backend, log)
	ledgerService := ledger.NewService(backend, sessionManager, bridge, nil, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(sessionManager, ledgerService, buildInfo, log)

	jobs := workers.NewWorkers(
		workers.NewTokenRefreshJob(backend, cfg.Workers.TokenRefreshInterval, log),
	)

	app := client.NewApp(sessionManager, ui, jobs, log, bridge, storages)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
