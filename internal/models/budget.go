package models

// Budget represents a per-category spending ceiling. Spent is a running
// total of matched expense amounts, maintained incrementally by the ledger
// each transaction add/delete rather than recomputed on read. Category is a
// plain string match against transaction categories; there is no
// referential link between the two collections.
type Budget struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Limit    int64  `json:"limit"`
	Spent    int64  `json:"spent"`
}

// Remaining returns the unspent portion of the budget. It may be negative
// when spending has exceeded the limit.
func (b *Budget) Remaining() int64 {
	return b.Limit - b.Spent
}

// PercentUsed returns spent as a percentage of the limit, or 0 for a
// zero-limit budget.
func (b *Budget) PercentUsed() float64 {
	if b.Limit <= 0 {
		return 0
	}
	return float64(b.Spent) / float64(b.Limit) * 100
}
