package store

import (
	"encoding/json"

	"minhafinanca/internal/model"
	"minhafinanca/internal/money"
	"minhafinanca/internal/session"
)

// Storage keys. Kept stable so existing databases keep loading across
// releases.
const (
	keyExpenses   = "expenses"
	keyIncome     = "income"
	keyLoggedIn   = "isLoggedIn"
	keyCategories = "custom_categories_v2"
)

// LoadSnapshot restores the persisted session state. Missing or corrupt
// records degrade to their zero value rather than failing the whole load;
// losing one record must not lock the user out of the rest.
func (s *Store) LoadSnapshot() (session.Snapshot, error) {
	var snap session.Snapshot

	raw, err := s.Get(keyExpenses)
	if err != nil {
		return snap, err
	}
	if raw != "" {
		var expenses []model.Expense
		if err := json.Unmarshal([]byte(raw), &expenses); err == nil {
			snap.Expenses = expenses
		}
	}

	raw, err = s.Get(keyIncome)
	if err != nil {
		return snap, err
	}
	snap.Income = money.ParseDecimal(raw)

	raw, err = s.Get(keyLoggedIn)
	if err != nil {
		return snap, err
	}
	snap.LoggedIn = raw == "true"

	raw, err = s.Get(keyCategories)
	if err != nil {
		return snap, err
	}
	if raw != "" {
		var cats []model.Category
		if err := json.Unmarshal([]byte(raw), &cats); err == nil {
			snap.Categories = cats
		}
	}

	return snap, nil
}

// SaveSnapshot writes the full session state.
func (s *Store) SaveSnapshot(snap session.Snapshot) error {
	expenses, err := json.Marshal(snap.Expenses)
	if err != nil {
		return err
	}
	if err := s.Set(keyExpenses, string(expenses)); err != nil {
		return err
	}

	if err := s.Set(keyIncome, money.Decimal(snap.Income)); err != nil {
		return err
	}

	loggedIn := "false"
	if snap.LoggedIn {
		loggedIn = "true"
	}
	if err := s.Set(keyLoggedIn, loggedIn); err != nil {
		return err
	}

	cats, err := json.Marshal(snap.Categories)
	if err != nil {
		return err
	}
	return s.Set(keyCategories, string(cats))
}
