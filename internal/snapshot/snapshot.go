// Package snapshot mirrors the in-memory collections into a local
// SQLite database so the last fetched state survives restarts and is
// available while the remote service is unreachable.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"karma/internal/core"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func Open(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReplaceTransactions overwrites the stored transaction snapshot,
// preserving the collection's display order.
func (r *Repository) ReplaceTransactions(ctx context.Context, items []core.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, type, category, amount_cents, date, description, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range items {
		_, err := stmt.ExecContext(ctx,
			t.ID, string(t.Type), t.Category, t.Amount.Cents,
			t.Date.Format(time.RFC3339), t.Description, i)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}

// ReplaceGoals overwrites the stored goal snapshot.
func (r *Repository) ReplaceGoals(ctx context.Context, items []core.Goal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO goals (id, name, category, target_cents, saved_cents, status, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, g := range items {
		_, err := stmt.ExecContext(ctx,
			g.ID, g.Name, g.Category, g.TargetAmount.Cents,
			g.SavedAmount.Cents, string(g.Status), i)
		if err != nil {
			return fmt.Errorf("insert goal %s: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit goals: %w", err)
	}
	return nil
}

// LoadTransactions returns the stored snapshot in display order.
func (r *Repository) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, category, amount_cents, date, description
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var items []core.Transaction
	for rows.Next() {
		var t core.Transaction
		var typ, date string
		var cents int64
		if err := rows.Scan(&t.ID, &typ, &t.Category, &cents, &date, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = core.TransactionType(typ)
		t.Amount = core.Money{Cents: cents}
		t.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", date, err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// LoadGoals returns the stored snapshot in display order.
func (r *Repository) LoadGoals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, target_cents, saved_cents, status
		FROM goals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var items []core.Goal
	for rows.Next() {
		var g core.Goal
		var status string
		var target, saved int64
		if err := rows.Scan(&g.ID, &g.Name, &g.Category, &target, &saved, &status); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.TargetAmount = core.Money{Cents: target}
		g.SavedAmount = core.Money{Cents: saved}
		g.Status = core.GoalStatus(status)
		items = append(items, g)
	}
	return items, rows.Err()
}
