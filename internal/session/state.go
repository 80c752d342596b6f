// Package session drives the application state: login, income, expenses,
// categories and the analysis lifecycle. Every mutation is persisted through
// the Persister so a restart restores the exact same view.
package session

import (
	"errors"
	"fmt"

	"minhafinanca/internal/category"
	"minhafinanca/internal/ledger"
	"minhafinanca/internal/model"
)

var (
	// ErrNoExpenses is returned when analysis is requested on an empty ledger.
	ErrNoExpenses = errors.New("session: no expenses recorded")
	// ErrMissingIncome is returned when analysis is requested with no income set.
	ErrMissingIncome = errors.New("session: monthly income not set")
	// ErrBusy is returned when an analysis is already in flight.
	ErrBusy = errors.New("session: analysis already running")
)

// Phase is the analysis lifecycle stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseResult
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is the persisted application state.
type Snapshot struct {
	Expenses   []model.Expense
	Income     int64
	LoggedIn   bool
	Categories []model.Category
}

// Persister stores and restores snapshots. The sqlite store implements it;
// tests substitute an in-memory fake.
type Persister interface {
	LoadSnapshot() (Snapshot, error)
	SaveSnapshot(Snapshot) error
}

// State is the live application state. Not safe for concurrent use; the TUI
// and CLI both drive it from a single goroutine.
type State struct {
	ledger   *ledger.Ledger
	registry *category.Registry
	income   int64
	loggedIn bool

	phase    Phase
	analysis *model.Analysis
	errMsg   string

	persister Persister
}

// Restore loads the persisted snapshot and builds the session from it.
func Restore(p Persister) (*State, error) {
	snap, err := p.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	return &State{
		ledger:    ledger.New(snap.Expenses),
		registry:  category.New(snap.Categories),
		income:    snap.Income,
		loggedIn:  snap.LoggedIn,
		phase:     PhaseIdle,
		persister: p,
	}, nil
}

func (s *State) persist() error {
	snap := Snapshot{
		Expenses:   s.ledger.Entries(),
		Income:     s.income,
		LoggedIn:   s.loggedIn,
		Categories: s.registry.All(),
	}
	if err := s.persister.SaveSnapshot(snap); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Login marks the session as authenticated.
func (s *State) Login() error {
	s.loggedIn = true
	return s.persist()
}

// Logout clears the authenticated flag. Ledger and income survive logout.
func (s *State) Logout() error {
	s.loggedIn = false
	return s.persist()
}

// LoggedIn reports whether the user has passed the login screen.
func (s *State) LoggedIn() bool {
	return s.loggedIn
}

// SetIncome replaces the monthly income.
func (s *State) SetIncome(cents int64) error {
	s.income = cents
	return s.persist()
}

// Income returns the monthly income in centavos.
func (s *State) Income() int64 {
	return s.income
}

// AddExpense records a new expense and persists.
func (s *State) AddExpense(e model.Expense) error {
	if err := s.ledger.Add(e); err != nil {
		return err
	}
	return s.persist()
}

// RemoveExpense deletes an expense by id and persists. Unknown ids are a
// silent no-op, matching the delete button on an already-gone row.
func (s *State) RemoveExpense(id string) error {
	s.ledger.Remove(id)
	return s.persist()
}

// Ledger exposes the expense history.
func (s *State) Ledger() *ledger.Ledger {
	return s.ledger
}

// Registry exposes the category registry.
func (s *State) Registry() *category.Registry {
	return s.registry
}

// AddCategory registers a custom category and persists.
func (s *State) AddCategory(name string) (*model.Category, error) {
	cat, err := s.registry.Add(name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return cat, s.persist()
}

// Summary derives the current budget figures.
func (s *State) Summary() model.Summary {
	return ledger.Summarize(s.income, s.ledger.Total())
}

// Phase returns the analysis lifecycle stage.
func (s *State) Phase() Phase {
	return s.phase
}

// Analysis returns the last successful analysis, or nil.
func (s *State) Analysis() *model.Analysis {
	return s.analysis
}

// ErrorMessage returns the user-facing failure text, empty outside PhaseError.
func (s *State) ErrorMessage() string {
	return s.errMsg
}

// RequestAnalysis validates preconditions and moves to PhaseLoading. Valid
// from PhaseIdle and PhaseError; a request while loading or showing a result
// returns ErrBusy.
func (s *State) RequestAnalysis() error {
	if s.phase != PhaseIdle && s.phase != PhaseError {
		return ErrBusy
	}
	if s.ledger.Len() == 0 {
		return ErrNoExpenses
	}
	if s.income <= 0 {
		return ErrMissingIncome
	}
	s.phase = PhaseLoading
	s.errMsg = ""
	return nil
}

// CompleteAnalysis stores the result and moves to PhaseResult. Ignored
// outside PhaseLoading, so a stale response cannot clobber newer state.
func (s *State) CompleteAnalysis(a *model.Analysis) {
	if s.phase != PhaseLoading {
		return
	}
	s.analysis = a
	s.phase = PhaseResult
}

// FailAnalysis records the failure message and moves to PhaseError. Ignored
// outside PhaseLoading.
func (s *State) FailAnalysis(msg string) {
	if s.phase != PhaseLoading {
		return
	}
	s.errMsg = msg
	s.phase = PhaseError
}

// Dismiss returns to PhaseIdle from a result or error screen, keeping the
// last analysis around for redisplay.
func (s *State) Dismiss() {
	if s.phase == PhaseResult || s.phase == PhaseError {
		s.phase = PhaseIdle
		s.errMsg = ""
	}
}
