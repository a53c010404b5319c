package core

import "testing"

func tx(typ TransactionType, cents int64) Transaction {
	return Transaction{Type: typ, Amount: Cents(cents)}
}

func TestSummarizeTransactions(t *testing.T) {
	tests := []struct {
		name         string
		transactions []Transaction
		wantIncome   int64
		wantExpenses int64
		wantNet      int64
	}{
		{
			name: "mixed",
			transactions: []Transaction{
				tx(Income, 300000),
				tx(Expense, 120050),
				tx(Saving, 50000),
				tx(Income, 2500),
			},
			wantIncome:   302500,
			wantExpenses: 170050,
			wantNet:      132450,
		},
		{
			name: "savings count as expenses",
			transactions: []Transaction{
				tx(Income, 10000),
				tx(Saving, 10000),
			},
			wantIncome:   10000,
			wantExpenses: 10000,
			wantNet:      0,
		},
		{
			name: "net income may be negative",
			transactions: []Transaction{
				tx(Income, 5000),
				tx(Expense, 7500),
			},
			wantIncome:   5000,
			wantExpenses: 7500,
			wantNet:      -2500,
		},
		{name: "empty collection", transactions: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeTransactions(tt.transactions)
			if got.TotalIncome.Cents != tt.wantIncome {
				t.Errorf("TotalIncome = %d, want %d", got.TotalIncome.Cents, tt.wantIncome)
			}
			if got.TotalExpenses.Cents != tt.wantExpenses {
				t.Errorf("TotalExpenses = %d, want %d", got.TotalExpenses.Cents, tt.wantExpenses)
			}
			if got.NetIncome.Cents != tt.wantNet {
				t.Errorf("NetIncome = %d, want %d", got.NetIncome.Cents, tt.wantNet)
			}
			// Invariant: net income is exactly income minus expenses, with
			// no rounding drift at integer cents.
			if got.NetIncome != got.TotalIncome.Sub(got.TotalExpenses) {
				t.Error("NetIncome != TotalIncome - TotalExpenses")
			}
		})
	}
}

func TestSummarizeGoals(t *testing.T) {
	goals := []Goal{
		{ID: "1", Status: GoalActive, SavedAmount: Cents(25000), TargetAmount: Cents(100000)},
		{ID: "2", Status: GoalActive, SavedAmount: Cents(50000), TargetAmount: Cents(100000)},
		{ID: "3", Status: GoalCompleted, SavedAmount: Cents(80000), TargetAmount: Cents(80000)},
	}

	got := SummarizeGoals(goals)
	if got.ActiveGoals != 2 {
		t.Errorf("ActiveGoals = %d, want 2", got.ActiveGoals)
	}
	if got.TotalSaved.Cents != 75000 {
		t.Errorf("TotalSaved = %d, want 75000 (completed goal excluded)", got.TotalSaved.Cents)
	}
	if got.TotalTarget.Cents != 200000 {
		t.Errorf("TotalTarget = %d, want 200000", got.TotalTarget.Cents)
	}
	if got.OverallProgress != 37.5 {
		t.Errorf("OverallProgress = %v, want 37.5", got.OverallProgress)
	}
}

func TestSummarizeGoals_NeverDividesByZero(t *testing.T) {
	tests := []struct {
		name  string
		goals []Goal
	}{
		{name: "empty collection", goals: nil},
		{name: "no active goals", goals: []Goal{
			{Status: GoalCompleted, SavedAmount: Cents(100), TargetAmount: Cents(100)},
		}},
		{name: "active goals with zero targets", goals: []Goal{
			{Status: GoalActive, SavedAmount: Cents(100), TargetAmount: Cents(0)},
			{Status: GoalActive, SavedAmount: Cents(0), TargetAmount: Cents(0)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeGoals(tt.goals)
			if got.OverallProgress != 0 {
				t.Errorf("OverallProgress = %v, want 0", got.OverallProgress)
			}
		})
	}
}
