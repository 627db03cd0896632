// Package cli implements the weekly command line interface, the local
// surface over the ledger service.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weekly/internal/config"
	applog "weekly/internal/log"
	"weekly/internal/services"
	"weekly/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "weekly",
	Short: "A personal budget tracker organized by week",
	Long: `Weekly records named cash transactions and aggregates them into daily
and weekly totals, organized into a current week and a history of
previous weeks. Everything is stored locally; there is no network.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext adds all child commands to the root command and runs it
// with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup wires config, logging, storage, and the ledger service, and loads
// the persisted state. Callers own the returned service and must Close it.
func setup(ctx context.Context) (*services.LedgerService, *applog.Logger, error) {
	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentCLI})
	applog.SetDefault(logger)

	var store storage.KeyValue
	switch cfg.StorageBackend {
	case "memory":
		store = storage.NewMemoryStore()
	default:
		store, err = storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize storage: %w", err)
		}
	}
	logger.Debug("Storage initialized", applog.FieldBackend, cfg.StorageBackend)

	svc := services.NewLedgerService(store, logger)
	svc.Load(ctx)
	return svc, logger, nil
}

func fail(err error) error {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}
