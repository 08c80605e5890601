package models

import (
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletModel is the persistence model for the Wallet domain entity.
// The unique index on code backstops the allocator: two concurrent inserts
// can compute the same next code, and exactly one of them wins.
type WalletModel struct {
	AggregateModel
	Code string            `gorm:"type:varchar(20);not null;uniqueIndex:idx_wallet_code"`
	Name string            `gorm:"type:varchar(200);not null"`
	Type ledger.WalletType `gorm:"type:varchar(20);not null"`
	Note string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WalletModel) TableName() string {
	return "wallets"
}

// ToDomain converts the persistence model to a domain Wallet entity.
func (m *WalletModel) ToDomain() *ledger.Wallet {
	w := &ledger.Wallet{
		Code: m.Code,
		Name: m.Name,
		Type: m.Type,
		Note: m.Note,
	}
	m.PopulateAggregateRoot(&w.BaseAggregateRoot)
	return w
}

// FromDomain populates the persistence model from a domain Wallet entity.
func (m *WalletModel) FromDomain(w *ledger.Wallet) {
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	m.Code = w.Code
	m.Name = w.Name
	m.Type = w.Type
	m.Note = w.Note
}

// WalletModelFromDomain creates a new persistence model from a domain Wallet entity.
func WalletModelFromDomain(w *ledger.Wallet) *WalletModel {
	m := &WalletModel{}
	m.FromDomain(w)
	return m
}

// TransactionModel is the persistence model for the Transaction domain entity.
// Wallet and category references are plain UUID columns, not database foreign
// keys: cascade cleanup owns referential integrity so that soft-deleted
// parents never block child rows.
type TransactionModel struct {
	AggregateModel
	Code              string                 `gorm:"type:varchar(20);not null;uniqueIndex:idx_transaction_code"`
	Type              ledger.TransactionType `gorm:"type:varchar(20);not null;index"`
	Date              time.Time              `gorm:"not null;index"`
	Amount            decimal.Decimal        `gorm:"type:decimal(18,2);not null"`
	WalletID          uuid.UUID              `gorm:"type:uuid;not null;index"`
	WalletToID        *uuid.UUID             `gorm:"type:uuid;index"`
	IncomeCategoryID  *uuid.UUID             `gorm:"type:uuid;index"`
	ExpenseCategoryID *uuid.UUID             `gorm:"type:uuid;index"`
	ProjectID         *uuid.UUID             `gorm:"type:uuid;index"`
	WorkshopJobID     *uuid.UUID             `gorm:"type:uuid;index"`
	IsCommonCost      bool                   `gorm:"not null;default:false"`
	Note              string                 `gorm:"type:text"`
	IsSample          bool                   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TransactionModel) ToDomain() *ledger.Transaction {
	t := &ledger.Transaction{
		Code:              m.Code,
		Type:              m.Type,
		Date:              m.Date.UTC(),
		Amount:            m.Amount,
		WalletID:          m.WalletID,
		WalletToID:        m.WalletToID,
		IncomeCategoryID:  m.IncomeCategoryID,
		ExpenseCategoryID: m.ExpenseCategoryID,
		ProjectID:         m.ProjectID,
		WorkshopJobID:     m.WorkshopJobID,
		IsCommonCost:      m.IsCommonCost,
		Note:              m.Note,
		IsSample:          m.IsSample,
	}
	m.PopulateAggregateRoot(&t.BaseAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TransactionModel) FromDomain(t *ledger.Transaction) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Code = t.Code
	m.Type = t.Type
	m.Date = t.Date
	m.Amount = t.Amount
	m.WalletID = t.WalletID
	m.WalletToID = t.WalletToID
	m.IncomeCategoryID = t.IncomeCategoryID
	m.ExpenseCategoryID = t.ExpenseCategoryID
	m.ProjectID = t.ProjectID
	m.WorkshopJobID = t.WorkshopJobID
	m.IsCommonCost = t.IsCommonCost
	m.Note = t.Note
	m.IsSample = t.IsSample
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction entity.
func TransactionModelFromDomain(t *ledger.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(t)
	return m
}

// AdjustmentModel is the persistence model for the Adjustment domain entity.
type AdjustmentModel struct {
	AggregateModel
	Code     string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_adjustment_code"`
	WalletID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date     time.Time       `gorm:"not null;index"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Note     string          `gorm:"type:text"`
	IsSample bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (AdjustmentModel) TableName() string {
	return "adjustments"
}

// ToDomain converts the persistence model to a domain Adjustment entity.
func (m *AdjustmentModel) ToDomain() *ledger.Adjustment {
	a := &ledger.Adjustment{
		Code:     m.Code,
		WalletID: m.WalletID,
		Date:     m.Date.UTC(),
		Amount:   m.Amount,
		Note:     m.Note,
		IsSample: m.IsSample,
	}
	m.PopulateAggregateRoot(&a.BaseAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain Adjustment entity.
func (m *AdjustmentModel) FromDomain(a *ledger.Adjustment) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Code = a.Code
	m.WalletID = a.WalletID
	m.Date = a.Date
	m.Amount = a.Amount
	m.Note = a.Note
	m.IsSample = a.IsSample
}

// AdjustmentModelFromDomain creates a new persistence model from a domain Adjustment entity.
func AdjustmentModelFromDomain(a *ledger.Adjustment) *AdjustmentModel {
	m := &AdjustmentModel{}
	m.FromDomain(a)
	return m
}

// IncomeCategoryModel is the persistence model for the IncomeCategory domain entity.
type IncomeCategoryModel struct {
	AggregateModel
	Code string `gorm:"type:varchar(20)"`
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (IncomeCategoryModel) TableName() string {
	return "income_categories"
}

// ToDomain converts the persistence model to a domain IncomeCategory entity.
func (m *IncomeCategoryModel) ToDomain() *ledger.IncomeCategory {
	c := &ledger.IncomeCategory{
		Code: m.Code,
		Name: m.Name,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// IncomeCategoryModelFromDomain creates a new persistence model from a domain entity.
func IncomeCategoryModelFromDomain(c *ledger.IncomeCategory) *IncomeCategoryModel {
	m := &IncomeCategoryModel{}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	return m
}

// ExpenseCategoryModel is the persistence model for the ExpenseCategory domain entity.
type ExpenseCategoryModel struct {
	AggregateModel
	Code string `gorm:"type:varchar(20)"`
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (ExpenseCategoryModel) TableName() string {
	return "expense_categories"
}

// ToDomain converts the persistence model to a domain ExpenseCategory entity.
func (m *ExpenseCategoryModel) ToDomain() *ledger.ExpenseCategory {
	c := &ledger.ExpenseCategory{
		Code: m.Code,
		Name: m.Name,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// ExpenseCategoryModelFromDomain creates a new persistence model from a domain entity.
func ExpenseCategoryModelFromDomain(c *ledger.ExpenseCategory) *ExpenseCategoryModel {
	m := &ExpenseCategoryModel{}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	return m
}
