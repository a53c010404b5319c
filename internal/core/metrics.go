package core

// Derived metrics are pure folds over the current collection. They hold
// no state of their own and are recomputed in full whenever a store
// replaces its items; at this data scale recompute beats incremental
// bookkeeping.

// TransactionSummary aggregates a transaction collection for the
// dashboard widgets.
type TransactionSummary struct {
	TotalIncome   Money
	TotalExpenses Money
	NetIncome     Money
}

// SummarizeTransactions folds a transaction collection into totals.
// Savings count as expenses: money moved into a goal has left the
// spendable balance. NetIncome may be negative.
func SummarizeTransactions(transactions []Transaction) TransactionSummary {
	var s TransactionSummary
	for _, t := range transactions {
		switch t.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense, Saving:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
	}
	s.NetIncome = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// GoalSummary aggregates the active subset of a goal collection.
type GoalSummary struct {
	ActiveGoals int
	TotalSaved  Money
	TotalTarget Money
	// OverallProgress is a percentage in [0, ∞); 0 when no active goal
	// carries a positive target.
	OverallProgress float64
}

// SummarizeGoals folds a goal collection into dashboard aggregates.
// Only active goals participate; completed goals neither inflate the
// target nor the saved totals.
func SummarizeGoals(goals []Goal) GoalSummary {
	var s GoalSummary
	for _, g := range goals {
		if !g.IsActive() {
			continue
		}
		s.ActiveGoals++
		s.TotalSaved = s.TotalSaved.Add(g.SavedAmount)
		s.TotalTarget = s.TotalTarget.Add(g.TargetAmount)
	}
	if s.TotalTarget.Cents > 0 {
		s.OverallProgress = float64(s.TotalSaved.Cents) / float64(s.TotalTarget.Cents) * 100
	}
	return s
}
