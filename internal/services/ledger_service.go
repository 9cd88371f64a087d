package services

import (
	"strings"
	"sync"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/storage"
	"fintrack/internal/uuid"
)

// ledgerService holds the in-memory ledger state. Mutations take the lock
// for the whole read-modify-write sequence so budget adjustments stay
// atomic with respect to other mutations; reads copy under the same lock.
type ledgerService struct {
	mu           sync.Mutex
	store        SnapshotStore
	transactions []models.Transaction
	budgets      []models.Budget
}

// NewLedgerService loads both collections from the snapshot store. When
// neither slot has ever been written and seeding is enabled, it populates
// the ledger with the fixed sample dataset and persists it.
func NewLedgerService(store SnapshotStore, seed bool) (LedgerServicer, error) {
	s := &ledgerService{store: store}

	loadedTransactions, err := store.Load(storage.SlotTransactions, &s.transactions)
	if err != nil {
		return nil, err
	}
	loadedBudgets, err := store.Load(storage.SlotBudgets, &s.budgets)
	if err != nil {
		return nil, err
	}

	if !loadedTransactions && !loadedBudgets && seed {
		s.transactions = seedTransactions(time.Now())
		s.budgets = seedBudgets()
		s.persist()
		logger.Get().Infow("ledger seeded with sample data",
			"transactions", len(s.transactions),
			"budgets", len(s.budgets),
		)
	}

	return s, nil
}

// AddTransaction validates the input, assigns an id and date, prepends the
// transaction to the collection, and applies its amount to matching budgets
// when it is an expense.
func (s *ledgerService) AddTransaction(in TransactionInput) (*models.Transaction, error) {
	switch in.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	if in.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := models.Transaction{
		ID:          uuid.New(),
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Most-recent-first is the canonical in-memory order.
	s.transactions = append([]models.Transaction{transaction}, s.transactions...)

	if transaction.IsExpense() {
		s.adjustBudgetSpent(transaction.Category, transaction.Amount)
	}

	s.persist()
	return &transaction, nil
}

// DeleteTransaction removes the transaction with the given id and reverses
// its effect on matching budgets.
func (s *ledgerService) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrTransactionNotFound
	}

	transaction := s.transactions[idx]
	if transaction.IsExpense() {
		s.adjustBudgetSpent(transaction.Category, -transaction.Amount)
	}

	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)

	s.persist()
	return nil
}

// AddBudget creates a budget with spent initialized to zero. Pre-existing
// expense history for the category is deliberately ignored: budgets only
// accrue spend from transactions recorded after their creation.
func (s *ledgerService) AddBudget(in BudgetInput) (*models.Budget, error) {
	if strings.TrimSpace(in.Category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if in.Limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}

	budget := models.Budget{
		ID:       uuid.New(),
		Category: in.Category,
		Limit:    in.Limit,
		Spent:    0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets = append(s.budgets, budget)

	s.persist()
	return &budget, nil
}

// UpdateBudget merges the patch onto the budget with the given id. Spent is
// never recomputed here: after a category change it still reflects the old
// category's accrual until matching transactions adjust it.
func (s *ledgerService) UpdateBudget(id string, patch BudgetPatch) (*models.Budget, error) {
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
	}
	if patch.Limit != nil && *patch.Limit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID != id {
			continue
		}
		if patch.Category != nil {
			s.budgets[i].Category = *patch.Category
		}
		if patch.Limit != nil {
			s.budgets[i].Limit = *patch.Limit
		}

		updated := s.budgets[i]
		s.persist()
		return &updated, nil
	}

	return nil, apperrors.ErrBudgetNotFound
}

// DeleteBudget removes the budget with the given id. Transactions in the
// budget's category are unaffected.
func (s *ledgerService) DeleteBudget(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			s.persist()
			return nil
		}
	}

	return apperrors.ErrBudgetNotFound
}

// Transactions returns a snapshot copy of the transaction collection.
func (s *ledgerService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Budgets returns a snapshot copy of the budget collection.
func (s *ledgerService) Budgets() []models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// adjustBudgetSpent applies delta to the spent total of every budget whose
// category matches, flooring at zero. Matching is a plain string equality
// check and is intentionally confined to this method; budgets and
// transactions are not referentially linked. When several budgets share a
// category, all of them are adjusted.
// Callers must hold s.mu.
func (s *ledgerService) adjustBudgetSpent(category string, delta int64) {
	for i := range s.budgets {
		if s.budgets[i].Category != category {
			continue
		}
		spent := s.budgets[i].Spent + delta
		if spent < 0 {
			spent = 0
		}
		s.budgets[i].Spent = spent
	}
}

// persist writes both collections to their slots. Save failures are logged
// and otherwise ignored: the in-memory ledger stays authoritative for the
// session and the next successful save rewrites the whole snapshot anyway.
// Callers must hold s.mu.
func (s *ledgerService) persist() {
	if err := s.store.Save(storage.SlotTransactions, s.transactions); err != nil {
		logger.Get().Errorw("failed to persist transactions", "error", err)
	}
	if err := s.store.Save(storage.SlotBudgets, s.budgets); err != nil {
		logger.Get().Errorw("failed to persist budgets", "error", err)
	}
}
