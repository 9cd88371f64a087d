package models

// categories is the fixed, ordered set of known category labels used to
// populate selection inputs. It is not enforced as a constraint on
// transaction or budget categories.
var categories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Travel",
	"Education",
	"Other",
}

// Categories returns the known category labels in display order.
// The returned slice is a copy; callers may not mutate the set.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
