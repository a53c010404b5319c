package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"karma/internal/core"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "karma.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestTransactionsRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	items := []core.Transaction{
		{
			ID:          "t2",
			Type:        core.Expense,
			Category:    "groceries",
			Amount:      core.Money{Cents: 4250},
			Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Description: "weekly shop",
		},
		{
			ID:       "t1",
			Type:     core.Income,
			Category: "salary",
			Amount:   core.Money{Cents: 300000},
			Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := repo.ReplaceTransactions(ctx, items); err != nil {
		t.Fatalf("ReplaceTransactions() error: %v", err)
	}

	loaded, err := repo.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions() error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d transactions, want 2", len(loaded))
	}
	// Order must match the collection, newest first
	if loaded[0].ID != "t2" || loaded[1].ID != "t1" {
		t.Errorf("order = [%s %s], want [t2 t1]", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Amount.Cents != 4250 {
		t.Errorf("amount = %d cents, want 4250", loaded[0].Amount.Cents)
	}
	if !loaded[0].Date.Equal(items[0].Date) {
		t.Errorf("date = %v, want %v", loaded[0].Date, items[0].Date)
	}
}

func TestReplaceTransactionsOverwrites(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := []core.Transaction{
		{ID: "t1", Type: core.Income, Category: "salary", Amount: core.Money{Cents: 100}, Date: time.Now().UTC()},
		{ID: "t2", Type: core.Expense, Category: "rent", Amount: core.Money{Cents: 200}, Date: time.Now().UTC()},
	}
	if err := repo.ReplaceTransactions(ctx, first); err != nil {
		t.Fatalf("ReplaceTransactions() error: %v", err)
	}

	second := []core.Transaction{
		{ID: "t3", Type: core.Saving, Category: "vacation", Amount: core.Money{Cents: 300}, Date: time.Now().UTC()},
	}
	if err := repo.ReplaceTransactions(ctx, second); err != nil {
		t.Fatalf("ReplaceTransactions() error: %v", err)
	}

	loaded, err := repo.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions() error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "t3" {
		t.Errorf("loaded = %v, want single t3", loaded)
	}
}

func TestGoalsRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	items := []core.Goal{
		{
			ID:           "g1",
			Name:         "Laptop",
			Category:     "electronics",
			TargetAmount: core.Money{Cents: 150000},
			SavedAmount:  core.Money{Cents: 50000},
			Status:       core.GoalActive,
		},
		{
			ID:           "g2",
			Name:         "Trip",
			Category:     "travel",
			TargetAmount: core.Money{Cents: 80000},
			SavedAmount:  core.Money{Cents: 80000},
			Status:       core.GoalCompleted,
		},
	}

	if err := repo.ReplaceGoals(ctx, items); err != nil {
		t.Fatalf("ReplaceGoals() error: %v", err)
	}

	loaded, err := repo.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d goals, want 2", len(loaded))
	}
	if loaded[0].Name != "Laptop" || loaded[0].Status != core.GoalActive {
		t.Errorf("first goal = %+v", loaded[0])
	}
	if loaded[1].Status != core.GoalCompleted {
		t.Errorf("second goal status = %s, want completed", loaded[1].Status)
	}
}

func TestLoadEmptySnapshot(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	txns, err := repo.LoadTransactions(ctx)
	if err != nil {
		t.Fatalf("LoadTransactions() error: %v", err)
	}
	if len(txns) != 0 {
		t.Errorf("loaded %d transactions from fresh db, want 0", len(txns))
	}

	goals, err := repo.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() error: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("loaded %d goals from fresh db, want 0", len(goals))
	}
}
