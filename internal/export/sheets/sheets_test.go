package sheets

import (
	"context"
	"reflect"
	"testing"
	"time"

	"karma/internal/core"
)

func TestTransactionRows(t *testing.T) {
	items := []core.Transaction{
		{
			ID:          "t1",
			Type:        core.Expense,
			Category:    "groceries",
			Amount:      core.Money{Cents: 4250},
			Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Description: "weekly shop",
		},
		{
			ID:       "t2",
			Type:     core.Income,
			Category: "salary",
			Amount:   core.Money{Cents: 300000},
			Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	rows := transactionRows(items)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2)", len(rows))
	}
	if !reflect.DeepEqual(rows[0], transactionHeader) {
		t.Errorf("header row = %v", rows[0])
	}
	want := []any{"2026-03-14", "expense", "groceries", "42.50", "weekly shop"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
	if rows[2][3] != "3000.00" {
		t.Errorf("income amount = %v, want 3000.00", rows[2][3])
	}
}

func TestTransactionRowsEmpty(t *testing.T) {
	rows := transactionRows(nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header only", len(rows))
	}
}

func TestNewRequiresSpreadsheetID(t *testing.T) {
	ctx := context.Background()
	if _, err := New(ctx, "", "Transactions"); err == nil {
		t.Error("New() with empty spreadsheet ID should fail")
	}
	if _, err := New(ctx, "abc", ""); err == nil {
		t.Error("New() with empty sheet name should fail")
	}
}
