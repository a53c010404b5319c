package main

import (
	"context"
	"flag"
	"os"

	"karma/internal/api"
	"karma/internal/cli"
	"karma/internal/core"
	"karma/internal/export/sheets"
	"karma/internal/log"
	"karma/internal/query"
)

func main() {
	offline := flag.Bool("offline", false, "export the local snapshot instead of fetching from the backend")
	flag.Parse()

	cli.LoadEnvFile()
	slogger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(slogger)

	logger := log.New(log.DefaultConfig()).WithComponent(log.ComponentExport)

	if err := cfg.ValidateExport(); err != nil {
		logger.Error("Export configuration invalid", log.FieldError, err)
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		items []core.Transaction
		err   error
	)
	if *offline {
		repo := cli.InitSnapshot(slogger, cfg.SnapshotDBPath)
		defer repo.Close()

		items, err = repo.LoadTransactions(ctx)
		if err != nil {
			logger.Error("Failed to load transaction snapshot", log.FieldError, err)
			os.Exit(1)
		}
	} else {
		client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)
		if cfg.APIToken != "" {
			client.SetToken(cfg.APIToken)
		}

		items, err = client.ListTransactions(ctx, query.TransactionQuery{})
		if err != nil {
			logger.Error("Failed to fetch transactions", log.FieldError, err)
			os.Exit(1)
		}
	}

	exporter, err := sheets.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
	if err != nil {
		logger.Error("Failed to initialize Sheets client", log.FieldError, err)
		os.Exit(1)
	}

	if err := exporter.ExportTransactions(ctx, items); err != nil {
		logger.Error("Export failed", log.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Export complete",
		log.FieldOperation, log.OpExport,
		log.FieldItemCount, len(items),
		log.FieldSheetsRef, cfg.GoogleSheetName)
}
