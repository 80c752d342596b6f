// Package model defines domain types for expenses, categories, and coach analyses.
package model

// Expense is one recorded spending entry. Amount is integer centavos.
// Expenses are immutable after creation; removal is the only mutation.
type Expense struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`
	Icon        string `json:"icon"`
	Date        string `json:"date"`
	AccountName string `json:"accountName"`
}

// Category classifies expenses and carries display metadata.
// Name is unique case-insensitively; there is no rename or delete.
type Category struct {
	Name        string `json:"name"`
	IconKey     string `json:"iconKey"`
	Color       string `json:"color"`
	Description string `json:"desc"`
}
