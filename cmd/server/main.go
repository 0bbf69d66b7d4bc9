package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-flight-booking/internal/config"
	"github.com/MKhiriev/go-flight-booking/internal/handler"
	"github.com/MKhiriev/go-flight-booking/internal/logger"
	"github.com/MKhiriev/go-flight-booking/internal/server"
	"github.com/MKhiriev/go-flight-booking/internal/service"
	"github.com/MKhiriev/go-flight-booking/internal/store"
	"github.com/MKhiriev/go-flight-booking/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("flight-booking-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("flight-booking-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("photo_dir", cfg.Storage.Files.PhotoDir).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
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

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
