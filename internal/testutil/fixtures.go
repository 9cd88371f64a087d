package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// ExpenseOn builds an expense transaction dated at the given time.
func ExpenseOn(date time.Time, amount int64, category string) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Type:        models.TransactionTypeExpense,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Date:        date,
	}
}

// IncomeOn builds an income transaction dated at the given time.
func IncomeOn(date time.Time, amount int64, category string) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Type:        models.TransactionTypeIncome,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test income %d", nextID()),
		Date:        date,
	}
}

// Budget builds a budget with the given spent total already accrued.
func Budget(category string, limit, spent int64) models.Budget {
	return models.Budget{
		ID:       uuid.New(),
		Category: category,
		Limit:    limit,
		Spent:    spent,
	}
}
