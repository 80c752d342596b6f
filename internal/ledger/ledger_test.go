package ledger

import (
	"math"
	"testing"

	"minhafinanca/internal/model"
)

func expense(id, category string, amount int64) model.Expense {
	return model.Expense{
		ID:          id,
		Category:    category,
		Description: category,
		Amount:      amount,
		Icon:        "Outros",
		Date:        "01/09/2026",
		AccountName: "Manual",
	}
}

func TestAddNewestFirst(t *testing.T) {
	l := New(nil)
	if err := l.Add(expense("a", "Mercado", 1000)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := l.Add(expense("b", "Lazer", 2000)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got := l.Entries()
	if len(got) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order = [%s %s], want [b a]", got[0].ID, got[1].ID)
	}
}

func TestAddRejectsNonPositive(t *testing.T) {
	l := New(nil)
	for _, amount := range []int64{0, -500} {
		if err := l.Add(expense("x", "Mercado", amount)); err != ErrInvalidAmount {
			t.Errorf("Add(amount=%d) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after rejected adds, want 0", l.Len())
	}
}

func TestRemove(t *testing.T) {
	l := New([]model.Expense{
		expense("b", "Lazer", 2000),
		expense("a", "Mercado", 1000),
	})

	l.Remove("a")
	if l.Len() != 1 {
		t.Fatalf("Len() = %d after Remove, want 1", l.Len())
	}
	if l.Entries()[0].ID != "b" {
		t.Errorf("remaining id = %s, want b", l.Entries()[0].ID)
	}

	// Unknown id is a no-op.
	l.Remove("missing")
	if l.Len() != 1 {
		t.Errorf("Len() = %d after removing unknown id, want 1", l.Len())
	}
}

func TestTotal(t *testing.T) {
	l := New(nil)
	if l.Total() != 0 {
		t.Errorf("Total() on empty ledger = %d, want 0", l.Total())
	}
	l.Add(expense("a", "Mercado", 120000))
	l.Add(expense("b", "Transporte", 50000))
	if got := l.Total(); got != 170000 {
		t.Errorf("Total() = %d, want 170000", got)
	}
}

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	l := New(nil)
	l.Add(expense("a", "Mercado", 1000))
	l.Add(expense("b", "Lazer", 2000))
	l.Add(expense("c", "Mercado", 3000))

	groups := l.GroupByCategory()
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	// Newest first, so Mercado (entry c) appears before Lazer.
	if groups[0].Category != "Mercado" || groups[0].Amount != 4000 {
		t.Errorf("groups[0] = %+v, want {Mercado 4000}", groups[0])
	}
	if groups[1].Category != "Lazer" || groups[1].Amount != 2000 {
		t.Errorf("groups[1] = %+v, want {Lazer 2000}", groups[1])
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(300000, 170000)
	if s.TotalExpenses != 170000 {
		t.Errorf("TotalExpenses = %d, want 170000", s.TotalExpenses)
	}
	if s.Balance != 130000 {
		t.Errorf("Balance = %d, want 130000", s.Balance)
	}
	if math.Abs(s.ProgressPercent-56.666666) > 0.001 {
		t.Errorf("ProgressPercent = %f, want ~56.67", s.ProgressPercent)
	}
}

func TestSummarizeZeroIncome(t *testing.T) {
	s := Summarize(0, 170000)
	if s.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %f with zero income, want 0", s.ProgressPercent)
	}
	if s.Balance != -170000 {
		t.Errorf("Balance = %d, want -170000", s.Balance)
	}
}

func TestSummarizeClampsProgress(t *testing.T) {
	s := Summarize(100000, 250000)
	if s.ProgressPercent != 100 {
		t.Errorf("ProgressPercent = %f when overspent, want 100", s.ProgressPercent)
	}
}
