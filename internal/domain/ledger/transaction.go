package ledger

import (
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// CodePrefix returns the document code family for this type
func (t TransactionType) CodePrefix() CodePrefix {
	switch t {
	case TransactionTypeIncome:
		return PrefixIncome
	case TransactionTypeExpense:
		return PrefixExpense
	default:
		return PrefixTransfer
	}
}

// Transaction is a recorded INCOME, EXPENSE or TRANSFER money movement.
// INCOME and EXPENSE affect exactly one wallet; TRANSFER decrements the source
// wallet and increments the destination wallet.
type Transaction struct {
	shared.BaseAggregateRoot
	Code              string          `json:"code"`
	Type              TransactionType `json:"type"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	WalletID          uuid.UUID       `json:"wallet_id"`
	WalletToID        *uuid.UUID      `json:"wallet_to_id,omitempty"`
	IncomeCategoryID  *uuid.UUID      `json:"income_category_id,omitempty"`
	ExpenseCategoryID *uuid.UUID      `json:"expense_category_id,omitempty"`
	ProjectID         *uuid.UUID      `json:"project_id,omitempty"`
	WorkshopJobID     *uuid.UUID      `json:"workshop_job_id,omitempty"`
	IsCommonCost      bool            `json:"is_common_cost"`
	Note              string          `json:"note"`
	IsSample          bool            `json:"is_sample"`
}

// NewTransaction creates a transaction and validates the per-type rules.
// The code is assigned by the allocator inside the insert transaction.
func NewTransaction(
	txType TransactionType,
	date time.Time,
	amount decimal.Decimal,
	walletID uuid.UUID,
) *Transaction {
	return &Transaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              txType,
		Date:              NormalizeDate(date),
		Amount:            amount,
		WalletID:          walletID,
	}
}

// Validate enforces the type-specific field matrix. It is run on create and
// re-run against the merged state on every update and restore.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return shared.NewValidationError("type", "Transaction type must be INCOME, EXPENSE or TRANSFER")
	}
	if t.WalletID == uuid.Nil {
		return shared.NewValidationError("wallet_id", "Source wallet is required")
	}
	if t.Amount.IsNegative() {
		return shared.NewValidationError("amount", "Amount must be non-negative")
	}

	switch t.Type {
	case TransactionTypeIncome:
		if t.IncomeCategoryID == nil {
			return shared.NewValidationError("income_category_id", "Income category is required for INCOME")
		}
		if t.ExpenseCategoryID != nil {
			return shared.NewValidationError("expense_category_id", "Expense category is not allowed on INCOME")
		}
		if t.WalletToID != nil {
			return shared.NewValidationError("wallet_to_id", "Destination wallet is not allowed on INCOME")
		}
		if t.IsCommonCost {
			return shared.NewValidationError("is_common_cost", "Common-cost flag applies to EXPENSE only")
		}

	case TransactionTypeExpense:
		if t.IncomeCategoryID != nil {
			return shared.NewValidationError("income_category_id", "Income category is not allowed on EXPENSE")
		}
		if t.WalletToID != nil {
			return shared.NewValidationError("wallet_to_id", "Destination wallet is not allowed on EXPENSE")
		}
		if t.IsCommonCost && t.ProjectID != nil {
			return shared.NewValidationError("is_common_cost", "A common-cost expense cannot reference a project")
		}

	case TransactionTypeTransfer:
		if t.WalletToID == nil {
			return shared.NewValidationError("wallet_to_id", "Destination wallet is required for TRANSFER")
		}
		if *t.WalletToID == t.WalletID {
			return shared.NewValidationError("wallet_to_id", "Destination wallet must differ from source wallet")
		}
		if t.IncomeCategoryID != nil || t.ExpenseCategoryID != nil {
			return shared.NewValidationError("category", "Categories are not allowed on TRANSFER")
		}
		if t.IsCommonCost {
			return shared.NewValidationError("is_common_cost", "Common-cost flag applies to EXPENSE only")
		}
	}

	return nil
}

// AffectsWallet reports whether the given wallet's balance depends on this row
func (t *Transaction) AffectsWallet(walletID uuid.UUID) bool {
	if t.WalletID == walletID {
		return true
	}
	return t.WalletToID != nil && *t.WalletToID == walletID
}
