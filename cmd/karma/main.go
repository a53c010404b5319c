package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"karma/internal/api"
	"karma/internal/cli"
	"karma/internal/core"
	"karma/internal/events"
	"karma/internal/log"
	"karma/internal/snapshot"
	"karma/internal/store"
	"karma/internal/theme"
)

func main() {
	refresh := flag.Duration("refresh", 0, "refresh the dashboard at this interval (0 = fetch once and exit)")
	flag.Parse()

	cli.LoadEnvFile()
	slogger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(slogger)

	logger := log.New(log.DefaultConfig())
	logger.Info("Starting karma dashboard",
		log.FieldOperation, log.OpStartup,
		log.FieldURL, cfg.APIBaseURL)

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger)

	repo := cli.InitSnapshot(slogger, cfg.SnapshotDBPath)
	defer repo.Close()

	themes, err := theme.Open(cfg.StateDir, logger)
	if err != nil {
		logger.Error("Failed to open theme state", log.FieldError, err)
		os.Exit(1)
	}

	session := store.NewSession(logger)
	transactions := store.NewTransactionStore(client, logger)
	goals := store.NewGoalStore(client, logger)

	txFilters := store.NewTransactionFilters(transactions)
	goalFilters := store.NewGoalFilters(goals, cfg.SearchDebounce, logger)
	defer goalFilters.Close()

	// Change events are best effort, the dashboard works without a broker.
	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, continuing without change events", log.FieldError, err)
		} else {
			defer publisher.Close()
		}
	}

	unsubTx := transactions.Subscribe(mirrorTransactions(repo, publisher, logger))
	defer unsubTx()
	unsubGoals := goals.Subscribe(mirrorGoals(repo, publisher, logger))
	defer unsubGoals()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.APIToken != "" {
		client.SetToken(cfg.APIToken)
		if user, err := client.Me(ctx); err != nil {
			logger.Warn("Could not load profile", log.FieldError, err)
		} else {
			session.SignIn(user, cfg.APIToken)
		}
	}

	if err := fetchAll(ctx, txFilters, goalFilters); err != nil {
		logger.Warn("Fetch failed, falling back to local snapshot", log.FieldError, err)
		printSnapshot(ctx, repo, themes, logger)
		if *refresh == 0 {
			return
		}
	} else {
		printDashboard(transactions, goals, session, themes)
	}

	if *refresh == 0 {
		return
	}

	shutdownCtx, done := cli.GracefulShutdown(slogger, 10*time.Second, func() {
		cancel()
	})

	ticker := time.NewTicker(*refresh)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-shutdownCtx.Done():
				return
			case <-ticker.C:
				if err := fetchAll(ctx, txFilters, goalFilters); err != nil {
					logger.Warn("Refresh failed", log.FieldError, err)
					continue
				}
				printDashboard(transactions, goals, session, themes)
			}
		}
	}()

	cli.WaitForShutdown(shutdownCtx, done)
}

// fetchAll refreshes both collections concurrently with the current
// filter parameters.
func fetchAll(ctx context.Context, tx *store.TransactionFilters, goals *store.GoalFilters) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return tx.Refresh(gctx) })
	g.Go(func() error { return goals.Refresh(gctx) })
	return g.Wait()
}

func printDashboard(transactions *store.TransactionStore, goals *store.GoalStore, session *store.Session, themes *theme.Store) {
	fmt.Printf("karma dashboard (%s theme)\n", themes.Current())
	if user, ok := session.User(); ok {
		fmt.Printf("signed in as %s <%s>\n", user.FullName, user.Email)
	}
	fmt.Println()

	printSummaries(transactions.Summary(), goals.Summary(), transactions.Len(), goals.Len())
}

// printSnapshot renders the last mirrored state when the remote
// service is unreachable.
func printSnapshot(ctx context.Context, repo *snapshot.Repository, themes *theme.Store, logger *log.Logger) {
	txns, err := repo.LoadTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load transaction snapshot", log.FieldError, err)
		return
	}
	goals, err := repo.LoadGoals(ctx)
	if err != nil {
		logger.Error("Failed to load goal snapshot", log.FieldError, err)
		return
	}

	fmt.Printf("karma dashboard (%s theme, offline snapshot)\n\n", themes.Current())
	printSummaries(core.SummarizeTransactions(txns), core.SummarizeGoals(goals), len(txns), len(goals))
}

func printSummaries(ts core.TransactionSummary, gs core.GoalSummary, txCount, goalCount int) {
	fmt.Printf("transactions (%d)\n", txCount)
	fmt.Printf("  income:   %s\n", ts.TotalIncome)
	fmt.Printf("  expenses: %s\n", ts.TotalExpenses)
	fmt.Printf("  net:      %s\n", ts.NetIncome)
	fmt.Println()
	fmt.Printf("goals (%d, %d active)\n", goalCount, gs.ActiveGoals)
	fmt.Printf("  saved:    %s of %s\n", gs.TotalSaved, gs.TotalTarget)
	fmt.Printf("  progress: %.1f%%\n", gs.OverallProgress)
}

// mirrorTransactions keeps the local snapshot and the change-event
// stream in step with the in-memory collection.
func mirrorTransactions(repo *snapshot.Repository, publisher *events.Publisher, logger *log.Logger) func(store.Event[core.Transaction]) {
	return func(ev store.Event[core.Transaction]) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := repo.ReplaceTransactions(ctx, ev.Items); err != nil {
			logger.Warn("Failed to mirror transactions", log.FieldError, err)
		}
		if publisher != nil {
			var id string
			if ev.Entity != nil {
				id = ev.Entity.ID
			}
			if err := publisher.PublishChange(ctx, "transactions", string(ev.Op), id); err != nil {
				logger.Warn("Failed to publish change", log.FieldError, err)
			}
		}
	}
}

func mirrorGoals(repo *snapshot.Repository, publisher *events.Publisher, logger *log.Logger) func(store.Event[core.Goal]) {
	return func(ev store.Event[core.Goal]) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := repo.ReplaceGoals(ctx, ev.Items); err != nil {
			logger.Warn("Failed to mirror goals", log.FieldError, err)
		}
		if publisher != nil {
			var id string
			if ev.Entity != nil {
				id = ev.Entity.ID
			}
			if err := publisher.PublishChange(ctx, "goals", string(ev.Op), id); err != nil {
				logger.Warn("Failed to publish change", log.FieldError, err)
			}
		}
	}
}
