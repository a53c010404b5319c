package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
	Saving  TransactionType = "saving"
)

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

type (
	TransactionType string

	GoalStatus string

	Money struct {
		Cents int64
	}

	// Transaction is a single income, expense or saving movement as the
	// remote service returns it. Amount is always non-negative; direction
	// is carried by Type alone.
	Transaction struct {
		ID          string          `json:"_id"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Amount      Money           `json:"amount"`
		Date        time.Time       `json:"date"`
		Description string          `json:"description,omitempty"`
	}

	// TransactionDraft is the creation payload. The server is authoritative
	// for the generated identity and any computed fields.
	TransactionDraft struct {
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Amount      Money           `json:"amount"`
		Date        time.Time       `json:"date"`
		Description string          `json:"description,omitempty"`
	}

	// Goal is a savings goal. SavedAmount <= TargetAmount is expected but
	// not enforced here; the server owns status transitions.
	Goal struct {
		ID           string     `json:"_id"`
		Name         string     `json:"name"`
		Category     string     `json:"category"`
		TargetAmount Money      `json:"targetAmount"`
		SavedAmount  Money      `json:"savedAmount"`
		Status       GoalStatus `json:"status"`
	}

	GoalDraft struct {
		Name         string `json:"name"`
		Category     string `json:"category"`
		TargetAmount Money  `json:"targetAmount"`
	}

	// GoalPatch carries a partial edit; nil fields are left untouched by
	// the server. The response is always the whole updated goal.
	GoalPatch struct {
		Name         *string `json:"name,omitempty"`
		Category     *string `json:"category,omitempty"`
		TargetAmount *Money  `json:"targetAmount,omitempty"`
	}

	// Contribution advances a goal's saved amount via the dedicated
	// sub-resource endpoint.
	Contribution struct {
		Amount Money `json:"amount"`
	}

	User struct {
		ID       string `json:"_id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar,omitempty"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidStatus = errors.New("invalid goal status")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrZeroDate      = errors.New("date cannot be zero")
	ErrInvalidTarget = errors.New("target amount must be positive")
)

func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Saving:
		return true
	default:
		return false
	}
}

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalActive, GoalCompleted:
		return true
	default:
		return false
	}
}

// EntityID implements the store identity contract.
func (t Transaction) EntityID() string { return t.ID }

// EntityID implements the store identity contract.
func (g Goal) EntityID() string { return g.ID }

func (d TransactionDraft) Validate() error {
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrEmptyCategory
	}
	if d.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if d.Date.IsZero() {
		return ErrZeroDate
	}
	if len(d.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

func (d GoalDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyName
	}
	if len(d.Name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrEmptyCategory
	}
	if d.TargetAmount.Cents <= 0 {
		return ErrInvalidTarget
	}
	return nil
}

func (c Contribution) Validate() error {
	if c.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Progress returns the completion ratio of a single goal. A zero target
// yields 0 rather than dividing by zero.
func (g Goal) Progress() float64 {
	if g.TargetAmount.Cents <= 0 {
		return 0
	}
	return float64(g.SavedAmount.Cents) / float64(g.TargetAmount.Cents)
}

// IsActive reports whether the goal counts toward dashboard aggregates.
func (g Goal) IsActive() bool {
	return g.Status == GoalActive
}
