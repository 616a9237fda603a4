package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/api"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/auth"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/cli"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/iocli"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/storage/boltdb"
	"github.com/Kramer-Mwangala/Felixportfolio/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "API base URL (overrides PORTFOLIO_API_URL)")
	dbPath := flag.String("db", "portfolio-client.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load(logger)
	if *serverURL != "" {
		cfg.APIURL = *serverURL
	}

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	apiClient := api.NewClient(cfg.APIURL)
	sessions := auth.NewService(boltStorage)
	app := cli.New(apiClient, sessions, cfg, iocli.NewStdio())

	if err := app.Run(ctx, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Felixportfolio Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
