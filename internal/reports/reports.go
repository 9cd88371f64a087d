// Package reports derives read-only views from a transaction snapshot:
// monthly totals, category spending breakdowns, trend series, and filtered
// report queries. Every function is pure; nothing here mutates ledger state
// or touches persistence. All sums are in integer cents, so no rounding
// happens mid-aggregation.
package reports

import (
	"sort"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// MonthSummary holds income and expense totals for one calendar month plus
// the transactions that fall inside it.
type MonthSummary struct {
	Income       int64                `json:"income"`
	Expenses     int64                `json:"expenses"`
	Transactions []models.Transaction `json:"transactions"`
}

// CategoryAmount is one category's total expense amount.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// TrendPoint is one month's entry in a trend series.
type TrendPoint struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
}

// Criteria constrains a filtered report. Zero From/To mean unbounded on
// that side; an empty or "all" Category/Type matches everything.
type Criteria struct {
	From     time.Time
	To       time.Time
	Category string
	Type     models.TransactionType
}

// CategoryBreakdown is one category's share of a filtered report.
type CategoryBreakdown struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Count    int    `json:"count"`
}

// Report is the result of a filtered report query.
type Report struct {
	Transactions     []models.Transaction `json:"transactions"`
	TotalIncome      int64                `json:"total_income"`
	TotalExpenses    int64                `json:"total_expenses"`
	TransactionCount int                  `json:"transaction_count"`
	Breakdown        []CategoryBreakdown  `json:"category_breakdown"`
}

// MonthlySummary sums income and expenses for the calendar month containing
// ref, over the closed interval [start of month, end of month]. A zero ref
// means the current month. Months with no transactions yield zero totals
// and an empty subset.
func MonthlySummary(transactions []models.Transaction, ref time.Time) MonthSummary {
	if ref.IsZero() {
		ref = time.Now()
	}
	start := startOfMonth(ref)
	end := endOfMonth(ref)

	summary := MonthSummary{Transactions: []models.Transaction{}}
	for _, t := range transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.Income += t.Amount
		case models.TransactionTypeExpense:
			summary.Expenses += t.Amount
		}
		summary.Transactions = append(summary.Transactions, t)
	}
	return summary
}

// SpendingByCategory groups all expense transactions, across all time, by
// category and sums their amounts. Categories with no expense transactions
// are omitted. Entries come back in known-category order, then
// alphabetically for categories outside the fixed set.
func SpendingByCategory(transactions []models.Transaction) []CategoryAmount {
	totals := make(map[string]int64)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		totals[t.Category] += t.Amount
	}

	out := make([]CategoryAmount, 0, len(totals))
	for _, category := range orderedCategories(totals) {
		out = append(out, CategoryAmount{Category: category, Amount: totals[category]})
	}
	return out
}

// TrendSeries computes a MonthlySummary for each of monthCount consecutive
// calendar months ending at (and including) the month containing ref, and
// returns them oldest to newest. A zero ref means the current month.
func TrendSeries(transactions []models.Transaction, monthCount int, ref time.Time) ([]TrendPoint, error) {
	if monthCount < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month count must be a positive integer")
	}
	if ref.IsZero() {
		ref = time.Now()
	}

	// Walk months from the first of the reference month so that day-of-month
	// overflow (e.g. March 31 minus one month) cannot skew the window.
	base := startOfMonth(ref)

	series := make([]TrendPoint, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		month := base.AddDate(0, -i, 0)
		summary := MonthlySummary(transactions, month)
		series = append(series, TrendPoint{
			Month:    month.Format("Jan"),
			Income:   summary.Income,
			Expenses: summary.Expenses,
			Net:      summary.Income - summary.Expenses,
		})
	}
	return series, nil
}

// Filtered returns the transactions matching the criteria together with
// their totals and a per-category expense breakdown restricted to the
// filtered subset. Categories with zero expense total are excluded from
// the breakdown.
func Filtered(transactions []models.Transaction, c Criteria) Report {
	report := Report{Transactions: []models.Transaction{}}

	totals := make(map[string]int64)
	counts := make(map[string]int)

	for _, t := range transactions {
		if !c.From.IsZero() && t.Date.Before(c.From) {
			continue
		}
		if !c.To.IsZero() && t.Date.After(c.To) {
			continue
		}
		if c.Category != "" && c.Category != "all" && t.Category != c.Category {
			continue
		}
		if c.Type != "" && c.Type != "all" && t.Type != c.Type {
			continue
		}

		report.Transactions = append(report.Transactions, t)
		switch t.Type {
		case models.TransactionTypeIncome:
			report.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			report.TotalExpenses += t.Amount
			totals[t.Category] += t.Amount
			counts[t.Category]++
		}
	}

	report.TransactionCount = len(report.Transactions)
	report.Breakdown = make([]CategoryBreakdown, 0, len(totals))
	for _, category := range orderedCategories(totals) {
		report.Breakdown = append(report.Breakdown, CategoryBreakdown{
			Category: category,
			Total:    totals[category],
			Count:    counts[category],
		})
	}
	return report
}

// PeriodRange maps a report period preset to the closed date interval
// containing ref: the current week (Sunday through Saturday), calendar
// month, or calendar year.
func PeriodRange(period string, ref time.Time) (time.Time, time.Time, error) {
	if ref.IsZero() {
		ref = time.Now()
	}
	switch period {
	case "weekly":
		start := startOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
		end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
		return start, end, nil
	case "monthly":
		return startOfMonth(ref), endOfMonth(ref), nil
	case "yearly":
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
		return start, end, nil
	}
	return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be weekly, monthly, or yearly")
}

// orderedCategories returns the keys of totals in known-category order
// first, then the rest alphabetically, so derived views are deterministic
// for consumers.
func orderedCategories(totals map[string]int64) []string {
	seen := make(map[string]bool, len(totals))
	out := make([]string, 0, len(totals))

	for _, category := range models.Categories() {
		if _, ok := totals[category]; ok {
			out = append(out, category)
			seen[category] = true
		}
	}

	var rest []string
	for category := range totals {
		if !seen[category] {
			rest = append(rest, category)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
