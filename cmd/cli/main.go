package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/billbreak/internal/buildinfo"
	"github.com/dmitrijs2005/billbreak/internal/client/cli"
	"github.com/dmitrijs2005/billbreak/internal/client/client"
	"github.com/dmitrijs2005/billbreak/internal/client/config"
	"github.com/dmitrijs2005/billbreak/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/billbreak/internal/client/services"
	"github.com/dmitrijs2005/billbreak/internal/client/storage"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Environment, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	gateway := storage.NewSessionStorage(metadata.NewSQLiteRepository(db), logger)
	api := client.NewHTTPClient(cfg, gateway, logger)

	store := services.NewSessionStore(api, gateway, logger)
	defer store.Close()

	ledger := services.NewLedgerService(api, logger)

	logger.Info(ctx, "client started", "api", cfg.APIBaseURL, "db", cfg.DatabasePath)
	cli.NewApp(store, ledger, logger, os.Stdin, os.Stdout).Run(ctx)
	return nil
}
