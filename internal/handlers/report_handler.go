package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/services"
)

// ReportHandler serves derived views computed from a ledger snapshot.
type ReportHandler struct {
	ledger services.LedgerServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ledger services.LedgerServicer) *ReportHandler {
	return &ReportHandler{ledger: ledger}
}

// GetMonthlySummary handles the monthly income/expense summary for the
// month containing the optional date query parameter (default: now).
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	ref, err := parseDateQuery(c, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary := reports.MonthlySummary(h.ledger.Transactions(), ref)
	c.JSON(http.StatusOK, summary)
}

// GetSpendingByCategory handles the all-time expense breakdown by category.
func (h *ReportHandler) GetSpendingByCategory(c *gin.Context) {
	spending := reports.SpendingByCategory(h.ledger.Transactions())
	c.JSON(http.StatusOK, gin.H{"spending": spending})
}

// GetTrendSeries handles the multi-month trend series ending at the month
// containing the optional date query parameter. months defaults to 6.
func (h *ReportHandler) GetTrendSeries(c *gin.Context) {
	months := 6
	if v := c.Query("months"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid months"))
			return
		}
		months = parsed
	}

	ref, err := parseDateQuery(c, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := reports.TrendSeries(h.ledger.Transactions(), months, ref)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// GetReport handles the filtered report query. The date window comes either
// from a period preset (weekly/monthly/yearly) or explicit from/to bounds;
// category and type narrow the subset further. The returned totals are the
// data source for any export the client performs.
func (h *ReportHandler) GetReport(c *gin.Context) {
	criteria, err := parseReportCriteria(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report := reports.Filtered(h.ledger.Transactions(), criteria)
	c.JSON(http.StatusOK, report)
}

func parseReportCriteria(c *gin.Context) (reports.Criteria, error) {
	var criteria reports.Criteria

	if period := c.Query("period"); period != "" {
		from, to, err := reports.PeriodRange(period, time.Now())
		if err != nil {
			return criteria, err
		}
		criteria.From, criteria.To = from, to
	} else {
		if v := c.Query("from"); v != "" {
			t, err := parseFlexibleTime(v)
			if err != nil {
				return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from format, use RFC3339 or YYYY-MM-DD")
			}
			criteria.From = t
		}
		if v := c.Query("to"); v != "" {
			t, err := parseFlexibleTime(v)
			if err != nil {
				return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to format, use RFC3339 or YYYY-MM-DD")
			}
			criteria.To = t
		}
	}

	criteria.Category = c.Query("category")

	if v := c.Query("type"); v != "" && v != "all" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			criteria.Type = txType
		default:
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income, expense, or all")
		}
	}

	return criteria, nil
}

// parseDateQuery parses an optional date query parameter; a zero time means
// the parameter was absent.
func parseDateQuery(c *gin.Context, param string) (time.Time, error) {
	v := c.Query(param)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := parseFlexibleTime(v)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+param+" format, use RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}
