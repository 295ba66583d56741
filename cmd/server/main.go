package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/handler"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/server"
	"github.com/MKhiriev/rewards-backend/internal/service"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/workers"
	"github.com/MKhiriev/rewards-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const schemaTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("rewards-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Version = buildInfo.ServiceVersion(cfg.App.Version)

	log := logger.NewLogger("rewards-server", cfg.Log.Level)
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")
	if cfg.App.UsingDevelopmentSecret {
		log.Warn().Msg("JWT_SECRET is not set, using the development secret")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	switch {
	case errors.Is(err, store.ErrDatabaseNotConfigured):
		log.Warn().Msg("DATABASE_URL is not set, database routes will report it")
	case err != nil:
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	storages := store.NewStorages(db, log)
	defer storages.Close()

	if db.Configured() {
		workers.NewWorkers(
			workers.NewSchemaWorker(storages, schemaTimeout, log),
		).Run(context.Background())
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Server.Address()).Str("env", cfg.App.Env).Msg("Server running")
	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
