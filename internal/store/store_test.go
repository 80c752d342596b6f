package store

import (
	"path/filepath"
	"testing"

	"minhafinanca/internal/model"
	"minhafinanca/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Get("missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}

	if err := s.Set("income", "3000.00"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("income", "3500.00"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, _ = s.Get("income")
	if got != "3500.00" {
		t.Errorf("Get(income) = %q, want 3500.00", got)
	}

	if err := s.Delete("income"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, _ = s.Get("income")
	if got != "" {
		t.Errorf("Get(income) after delete = %q, want empty", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := session.Snapshot{
		Expenses: []model.Expense{{
			ID:          "e1",
			Category:    "Mercado",
			Description: "Feira",
			Amount:      12050,
			Icon:        "Mercado",
			Date:        "01/09/2026",
			AccountName: "Manual",
		}},
		Income:   300000,
		LoggedIn: true,
		Categories: []model.Category{
			{Name: "Viagem", IconKey: "Custom", Color: "#34d399", Description: "Conta Personalizada"},
		},
	}
	if err := s.SaveSnapshot(want); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(got.Expenses) != 1 || got.Expenses[0] != want.Expenses[0] {
		t.Errorf("Expenses = %+v, want %+v", got.Expenses, want.Expenses)
	}
	if got.Income != 300000 {
		t.Errorf("Income = %d, want 300000", got.Income)
	}
	if !got.LoggedIn {
		t.Error("LoggedIn = false, want true")
	}
	if len(got.Categories) != 1 || got.Categories[0] != want.Categories[0] {
		t.Errorf("Categories = %+v, want %+v", got.Categories, want.Categories)
	}
}

func TestLoadSnapshotEmptyStore(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(got.Expenses) != 0 || got.Income != 0 || got.LoggedIn || len(got.Categories) != 0 {
		t.Errorf("LoadSnapshot() on empty store = %+v, want zero snapshot", got)
	}
}

func TestLoadSnapshotCorruptRecords(t *testing.T) {
	s := openTestStore(t)

	s.Set("expenses", "{not json")
	s.Set("income", "abc")
	s.Set("isLoggedIn", "yes")
	s.Set("custom_categories_v2", "[broken")

	got, err := s.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(got.Expenses) != 0 {
		t.Errorf("Expenses from corrupt record = %+v, want none", got.Expenses)
	}
	if got.Income != 0 {
		t.Errorf("Income from corrupt record = %d, want 0", got.Income)
	}
	if got.LoggedIn {
		t.Error("LoggedIn from unexpected value = true, want false")
	}
	if len(got.Categories) != 0 {
		t.Errorf("Categories from corrupt record = %+v, want none", got.Categories)
	}
}
