package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dmansurov/go-estate-api/internal/config"
	handlerhttp "github.com/dmansurov/go-estate-api/internal/handler/http"
	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/mailer"
	"github.com/dmansurov/go-estate-api/internal/server"
	"github.com/dmansurov/go-estate-api/internal/service"
	"github.com/dmansurov/go-estate-api/internal/store"
	"github.com/dmansurov/go-estate-api/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("estate-api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	notifier := mailer.NewMailer(cfg.SMTP, cfg.App.PublicURL, log)
	services := service.NewServices(storages, notifier, cfg.App, log)
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
