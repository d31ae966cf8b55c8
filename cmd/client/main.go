package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-swift-codes/internal/client"
	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewConsoleLogger("swiftctl")
	level := os.Getenv("APP_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if err := log.SetLevel(level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app := client.NewApp(cfg, buildInfo, log)
	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("swiftctl")
	}
}
