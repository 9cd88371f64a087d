package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// seedTransactions returns the fixed sample transactions used on first run.
func seedTransactions(now time.Time) []models.Transaction {
	return []models.Transaction{
		{
			ID:          uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      4599,
			Category:    "Food & Dining",
			Description: "Lunch at restaurant",
			Date:        now,
		},
		{
			ID:          uuid.New(),
			Type:        models.TransactionTypeIncome,
			Amount:      300000,
			Category:    "Salary",
			Description: "Monthly salary",
			Date:        now,
		},
		{
			ID:          uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      12000,
			Category:    "Bills & Utilities",
			Description: "Electricity bill",
			Date:        now,
		},
	}
}

// seedBudgets returns the fixed sample budgets used on first run. Their
// spent values are pre-set illustrative figures, not derived from the seed
// transactions.
func seedBudgets() []models.Budget {
	return []models.Budget{
		{ID: uuid.New(), Category: "Food & Dining", Limit: 50000, Spent: 24599},
		{ID: uuid.New(), Category: "Transportation", Limit: 20000, Spent: 8950},
		{ID: uuid.New(), Category: "Entertainment", Limit: 15000, Spent: 6700},
	}
}
