// Package ledger holds the ordered expense history and derives budget figures.
package ledger

import (
	"errors"

	"minhafinanca/internal/model"
)

// ErrInvalidAmount indicates an expense with a non-positive amount.
var ErrInvalidAmount = errors.New("ledger: amount must be positive")

// Ledger is the ordered collection of expense records, newest first.
type Ledger struct {
	entries []model.Expense
}

// New creates a ledger from restored entries. Order is preserved as given
// (newest first).
func New(entries []model.Expense) *Ledger {
	return &Ledger{entries: entries}
}

// Add prepends an expense. Consumers rely on newest-first iteration order
// for the recent-history display.
func (l *Ledger) Add(e model.Expense) error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	l.entries = append([]model.Expense{e}, l.entries...)
	return nil
}

// Remove deletes the entry with the given id. Removing an unknown id is a
// no-op, not an error.
func (l *Ledger) Remove(id string) {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a copy of all expenses, newest first.
func (l *Ledger) Entries() []model.Expense {
	out := make([]model.Expense, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Total sums all expense amounts. Recomputed on every call; at this scale an
// incremental cache buys nothing.
func (l *Ledger) Total() int64 {
	var total int64
	for _, e := range l.entries {
		total += e.Amount
	}
	return total
}

// CategoryTotal is one slice of the per-category composition.
type CategoryTotal struct {
	Category string
	Amount   int64
}

// GroupByCategory sums amounts per category, ordered by first appearance in
// the ledger. Used as chart input.
func (l *Ledger) GroupByCategory() []CategoryTotal {
	idx := make(map[string]int)
	var groups []CategoryTotal
	for _, e := range l.entries {
		if i, ok := idx[e.Category]; ok {
			groups[i].Amount += e.Amount
			continue
		}
		idx[e.Category] = len(groups)
		groups = append(groups, CategoryTotal{Category: e.Category, Amount: e.Amount})
	}
	return groups
}

// Summarize derives the budget snapshot from income and the ledger total.
// No rounding is applied; display layers round for presentation.
func Summarize(income, totalExpenses int64) model.Summary {
	s := model.Summary{
		TotalExpenses: totalExpenses,
		Balance:       income - totalExpenses,
	}
	if income > 0 {
		pct := float64(totalExpenses) / float64(income) * 100
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}
		s.ProgressPercent = pct
	}
	return s
}
