package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded money movement. Amounts are
// integer cents. A transaction is immutable once created: it is either
// present unchanged or absent, and its ID is never reused.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// IsExpense reports whether the transaction counts against budgets.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}
