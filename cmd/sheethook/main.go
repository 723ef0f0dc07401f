package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/config"
	handler "github.com/MKhiriev/go-infaq/internal/handler/http"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/server"
	"github.com/MKhiriev/go-infaq/internal/spreadsheet"
	"github.com/MKhiriev/go-infaq/internal/store"
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

	cfg, err := config.GetSheetHookConfig()
	if err != nil {
		logger.NewLogger("infaq-sheethook", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("infaq-sheethook", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("reconcile_at", cfg.ReconcileAt.String()).Msg("received configs")

	storages, err := store.NewSheetStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// Reconcile reads the backend with the anon key only; it never signs in.
	var backend adapter.TransactionRepository
	if cfg.Backend.URL != "" {
		httpBackend, err := adapter.NewLazyBackend(cfg.Backend, store.NewMemorySessionRepository(), log).Get()
		if err != nil {
			log.Fatal().Err(err).Msg("error creating backend adapter")
		}
		backend = httpBackend
	} else {
		log.Warn().Msg("no backend configured, reconcile is disabled")
	}

	sheet := spreadsheet.NewSheet(storages.SheetRepository, backend, storages.IsRetryable, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	h := handler.NewHandler(sheet, cfg.Sheets.ReconcileToken, buildInfo, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers()
	if backend != nil {
		jobs = workers.NewWorkers(workers.NewReconcileJob(sheet, cfg.ReconcileAt, log))
	}
	jobs.Start(context.Background())

	err = srv.RunServer()
	jobs.Stop()
	if closeErr := storages.Close(); closeErr != nil {
		log.Err(closeErr).Msg("error closing storages")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
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
