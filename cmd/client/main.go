package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hr-portal/internal/client"
	"github.com/MKhiriev/go-hr-portal/internal/config"
	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/internal/service"
	"github.com/MKhiriev/go-hr-portal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("hr-client")
	log.Debug().Str("version", buildVersion).Str("date", buildDate).Str("commit", buildCommit).Msg("build info")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		return client.ExitCode(fmt.Errorf("%w: %w", client.ErrUsage, err))
	}

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer storages.Close()

	navigator := client.NewNavigator(os.Stderr)
	services, err := service.NewClientServices(cfg, storages, navigator, nil, log)
	if err != nil {
		log.Err(err).Msg("create client services")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app := client.NewApp(services, navigator, os.Stdout, os.Stderr, log)
	if err = app.Run(ctx, args); err != nil {
		log.Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
	}

	return client.ExitCode(err)
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
