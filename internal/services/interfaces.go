package services

import (
	"time"

	"fintrack/internal/models"
)

// SnapshotStore is the durable-persistence contract the ledger writes
// through. Load reports absence without error so the ledger can fall back
// to seed data on first run.
type SnapshotStore interface {
	Load(slot string, dest interface{}) (bool, error)
	Save(slot string, value interface{}) error
}

// TransactionInput holds the caller-supplied fields for a new transaction.
// A zero Date means "now".
type TransactionInput struct {
	Type        models.TransactionType
	Amount      int64
	Category    string
	Description string
	Date        time.Time
}

// BudgetInput holds the caller-supplied fields for a new budget.
type BudgetInput struct {
	Category string
	Limit    int64
}

// BudgetPatch holds a partial overwrite of budget fields. Nil fields are
// left unchanged. Changing Category does not recompute Spent; see
// LedgerServicer.UpdateBudget.
type BudgetPatch struct {
	Category *string
	Limit    *int64
}

// LedgerServicer defines the contract for the ledger: the single
// authoritative owner of the transaction and budget collections. All
// mutations go through it and every state transition is persisted.
type LedgerServicer interface {
	AddTransaction(in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id string) error
	AddBudget(in BudgetInput) (*models.Budget, error)
	UpdateBudget(id string, patch BudgetPatch) (*models.Budget, error)
	DeleteBudget(id string) error

	// Transactions returns a snapshot copy of the transaction collection,
	// most recent first. Budgets returns a snapshot copy of the budget
	// collection in creation order.
	Transactions() []models.Transaction
	Budgets() []models.Budget
}
