package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/handler"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/server"
	"github.com/MKhiriev/go-hr-portal/internal/service"
	"github.com/MKhiriev/go-hr-portal/internal/store"
	"github.com/MKhiriev/go-hr-portal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("hr-devserver").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("hr-devserver")
	if cfg.Profile == config.ProfileDevelopment {
		log = logger.NewDevelopment("hr-devserver")
	}

	log.Debug().Str("profile", cfg.Profile).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages := store.NewStorages(log, service.DemoEmployees()...)
	services := service.NewServices(storages, cfg.Auth, log)

	if err = service.SeedDemoAccount(context.Background(), services.AuthService); err != nil {
		log.Fatal().Err(err).Msg("error seeding demo account")
	}
	log.Info().Str("email", service.DemoAccount.Email).Str("password", service.DemoAccount.Password).Msg("demo account ready")

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionJanitor(services.AuthService, cfg.Workers.JanitorInterval, log),
	)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
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
