package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	ledger services.LedgerServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledger services.LedgerServicer) *BudgetHandler {
	return &BudgetHandler{ledger: ledger}
}

// CreateBudgetRequest represents the request payload for creating a budget.
// Limit is in integer cents.
type CreateBudgetRequest struct {
	Category string `json:"category" binding:"required,max=100"`
	Limit    *int64 `json:"limit" binding:"required,gte=0"`
}

// UpdateBudgetRequest represents the request payload for updating a budget.
// Omitted fields are left unchanged.
type UpdateBudgetRequest struct {
	Category *string `json:"category" binding:"omitempty,min=1,max=100"`
	Limit    *int64  `json:"limit" binding:"omitempty,gte=0"`
}

// BudgetResponse represents a budget in the response, including the derived
// progress figures the client renders.
type BudgetResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Limit       int64   `json:"limit"`
	Spent       int64   `json:"spent"`
	Remaining   int64   `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
}

func budgetResponse(b *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		Category:    b.Category,
		Limit:       b.Limit,
		Spent:       b.Spent,
		Remaining:   b.Remaining(),
		PercentUsed: b.PercentUsed(),
	}
}

// CreateBudget handles the creation of a new budget. Spent starts at zero
// regardless of existing expense history for the category.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledger.AddBudget(services.BudgetInput{
		Category: req.Category,
		Limit:    *req.Limit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budgetResponse(budget)})
}

// GetBudgets handles listing all budgets with their derived progress.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	budgets := h.ledger.Budgets()

	out := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, budgetResponse(&budgets[i]))
	}

	c.JSON(http.StatusOK, gin.H{"budgets": out})
}

// UpdateBudget handles a partial update of a budget's category or limit.
// Spent is never recomputed on update; see the ledger contract.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledger.UpdateBudget(c.Param("id"), services.BudgetPatch{
		Category: req.Category,
		Limit:    req.Limit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budgetResponse(budget)})
}

// DeleteBudget handles the deletion of a budget. Transactions in the
// budget's category are not affected.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.ledger.DeleteBudget(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
