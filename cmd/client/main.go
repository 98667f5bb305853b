package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-feed/internal/adapter"
	"github.com/MKhiriev/go-feed/internal/client"
	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/models"
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
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		fmt.Fprint(os.Stderr, client.Usage)
		return 2
	}

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	log := logger.NewClientLogger("go-feed-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}

	app := client.NewApp(serverAdapter, client.NewFileTokenStore(cfg.TokenFile), os.Stdout, log)
	if err = app.Run(context.Background(), args); err != nil {
		fmt.Fprintln(os.Stderr, client.Describe(err))
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprint(os.Stderr, client.Usage)
			return 2
		}
		return 1
	}

	return 0
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
