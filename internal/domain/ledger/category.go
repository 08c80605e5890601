package ledger

import (
	"github.com/atelier/backend/internal/domain/shared"
)

// IncomeCategory classifies INCOME transactions. Income and expense categories
// live in separate universes: an income category can never attach to an
// EXPENSE transaction, and symmetrically for expense categories.
type IncomeCategory struct {
	shared.BaseAggregateRoot
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewIncomeCategory creates a new income category
func NewIncomeCategory(name string) (*IncomeCategory, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "Category name is required")
	}
	return &IncomeCategory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// ExpenseCategory classifies EXPENSE transactions. Attachment is optional:
// some expense subtypes (advertising spend) carry no category.
type ExpenseCategory struct {
	shared.BaseAggregateRoot
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewExpenseCategory creates a new expense category
func NewExpenseCategory(name string) (*ExpenseCategory, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "Category name is required")
	}
	return &ExpenseCategory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}
