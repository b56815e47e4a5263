package main

import (
	"context"
	"fmt"

	"github.com/fairshare/fairshare/internal/config"
	"github.com/fairshare/fairshare/internal/handler"
	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/server"
	"github.com/fairshare/fairshare/internal/service"
	"github.com/fairshare/fairshare/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fairshare-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := connectDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)
	handlers := handler.NewHandlers(services, cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDatabase(cfg *config.StructuredConfig, log *logger.Logger) (*store.DB, error) {
	ctx := context.Background()

	switch cfg.Storage.DB.Driver {
	case config.DriverSQLite:
		return store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		return store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
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
