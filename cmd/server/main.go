package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/handler"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/server"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"github.com/MKhiriev/go-swift-codes/internal/store"
	"github.com/MKhiriev/go-swift-codes/internal/workers"
	"github.com/MKhiriev/go-swift-codes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("swift-codes-server")

	config.DefaultBuildVersion = buildInfo.BuildVersion()
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("driver", cfg.Storage.Driver).Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

// run wires storages, services, startup workers and transports, then serves
// until ctx is canceled or a shutdown signal arrives. Storages are closed on
// every return path.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(context.WithoutCancel(ctx)); closeErr != nil {
			log.Err(closeErr).Str("func", "run").Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if err = workers.NewWorkers(services, cfg.Workers, log).Run(ctx); err != nil {
		return fmt.Errorf("error running startup workers: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.Run(ctx)
}
