package session

import (
	"errors"
	"testing"

	"minhafinanca/internal/model"
)

type memPersister struct {
	snap  Snapshot
	saves int
	fail  bool
}

func (m *memPersister) LoadSnapshot() (Snapshot, error) {
	return m.snap, nil
}

func (m *memPersister) SaveSnapshot(s Snapshot) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.snap = s
	m.saves++
	return nil
}

func newState(t *testing.T, p *memPersister) *State {
	t.Helper()
	s, err := Restore(p)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	return s
}

func expense(id string, amount int64) model.Expense {
	return model.Expense{
		ID:          id,
		Category:    "Mercado",
		Description: "Mercado",
		Amount:      amount,
		Icon:        "Mercado",
		Date:        "01/09/2026",
		AccountName: "Manual",
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	p := &memPersister{}
	s := newState(t, p)

	if err := s.Login(); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := s.SetIncome(300000); err != nil {
		t.Fatalf("SetIncome() error = %v", err)
	}
	if err := s.AddExpense(expense("a", 120000)); err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}

	restored := newState(t, p)
	if !restored.LoggedIn() {
		t.Error("restored LoggedIn() = false, want true")
	}
	if restored.Income() != 300000 {
		t.Errorf("restored Income() = %d, want 300000", restored.Income())
	}
	if restored.Ledger().Len() != 1 {
		t.Errorf("restored Ledger().Len() = %d, want 1", restored.Ledger().Len())
	}
	if restored.Phase() != PhaseIdle {
		t.Errorf("restored Phase() = %v, want idle", restored.Phase())
	}
}

func TestMutationsPersist(t *testing.T) {
	p := &memPersister{}
	s := newState(t, p)

	s.SetIncome(100000)
	s.AddExpense(expense("a", 5000))
	s.RemoveExpense("a")
	s.AddCategory("Viagem")

	if p.saves != 4 {
		t.Errorf("persister saw %d saves, want 4", p.saves)
	}
	if len(p.snap.Categories) == 0 {
		t.Error("snapshot has no categories after AddCategory")
	}
}

func TestRequestAnalysisGates(t *testing.T) {
	p := &memPersister{}
	s := newState(t, p)

	if err := s.RequestAnalysis(); err != ErrNoExpenses {
		t.Errorf("RequestAnalysis() with empty ledger = %v, want ErrNoExpenses", err)
	}

	s.AddExpense(expense("a", 5000))
	if err := s.RequestAnalysis(); err != ErrMissingIncome {
		t.Errorf("RequestAnalysis() without income = %v, want ErrMissingIncome", err)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() after rejected requests = %v, want idle", s.Phase())
	}

	s.SetIncome(300000)
	if err := s.RequestAnalysis(); err != nil {
		t.Fatalf("RequestAnalysis() error = %v", err)
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("Phase() = %v, want loading", s.Phase())
	}

	if err := s.RequestAnalysis(); err != ErrBusy {
		t.Errorf("RequestAnalysis() while loading = %v, want ErrBusy", err)
	}
}

func TestAnalysisLifecycle(t *testing.T) {
	p := &memPersister{}
	s := newState(t, p)
	s.SetIncome(300000)
	s.AddExpense(expense("a", 5000))

	// Success path.
	s.RequestAnalysis()
	s.CompleteAnalysis(&model.Analysis{QuickAnalysis: "ok"})
	if s.Phase() != PhaseResult {
		t.Fatalf("Phase() = %v, want result", s.Phase())
	}
	if s.Analysis() == nil || s.Analysis().QuickAnalysis != "ok" {
		t.Errorf("Analysis() = %+v, want QuickAnalysis ok", s.Analysis())
	}
	s.Dismiss()
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() after Dismiss = %v, want idle", s.Phase())
	}
	if s.Analysis() == nil {
		t.Error("Analysis() cleared by Dismiss, want it kept")
	}

	// Failure path allows retry.
	s.RequestAnalysis()
	s.FailAnalysis("Falha ao analisar as finanças. Tente novamente mais tarde.")
	if s.Phase() != PhaseError {
		t.Fatalf("Phase() = %v, want error", s.Phase())
	}
	if s.ErrorMessage() == "" {
		t.Error("ErrorMessage() empty in error phase")
	}
	if err := s.RequestAnalysis(); err != nil {
		t.Errorf("RequestAnalysis() from error phase = %v, want nil", err)
	}
}

func TestStaleCompletionIgnored(t *testing.T) {
	p := &memPersister{}
	s := newState(t, p)

	s.CompleteAnalysis(&model.Analysis{QuickAnalysis: "stale"})
	if s.Phase() != PhaseIdle || s.Analysis() != nil {
		t.Errorf("stale completion applied: phase=%v analysis=%v", s.Phase(), s.Analysis())
	}
	s.FailAnalysis("late failure")
	if s.Phase() != PhaseIdle {
		t.Errorf("stale failure applied: phase=%v", s.Phase())
	}
}

func TestAddExpenseRejectsInvalid(t *testing.T) {
	p := &memPersister{}
	s := newState(t, p)

	if err := s.AddExpense(expense("a", 0)); err == nil {
		t.Error("AddExpense(amount=0) error = nil, want invalid amount")
	}
	if p.saves != 0 {
		t.Errorf("persister saw %d saves after rejected add, want 0", p.saves)
	}
}
