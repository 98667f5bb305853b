package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/handler"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/server"
	"github.com/MKhiriev/go-feed/internal/service"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/workers"
	"github.com/MKhiriev/go-feed/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-feed-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-feed-server", cfg.App.LogLevel)
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if cerr := storages.Close(); cerr != nil {
			log.Err(cerr).Msg("error closing storages")
		}
	}()

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

	workers.NewWorkers(services, cfg.Workers, log, handlers.ReadinessObservers()...).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
