package ledger

import (
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest represents a request to create a new wallet
type CreateWalletRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	Type string `json:"type" binding:"required,oneof=CASH BANK OTHER"`
	Note string `json:"note" binding:"max=2000"`
}

// UpdateWalletRequest represents a request to update a wallet.
// The code is allocator-owned and never updatable.
type UpdateWalletRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
	Type *string `json:"type" binding:"omitempty,oneof=CASH BANK OTHER"`
	Note *string `json:"note" binding:"omitempty,max=2000"`
}

// WalletResponse represents a wallet in API responses
type WalletResponse struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Note      string     `json:"note"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// ToWalletResponse converts a domain wallet to its API representation
func ToWalletResponse(w *ledger.Wallet) *WalletResponse {
	resp := &WalletResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Type:      w.Type.String(),
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.DeletedAt.Valid {
		t := w.DeletedAt.Time
		resp.DeletedAt = &t
	}
	return resp
}

// CreateTransactionRequest represents a request to record a money movement
type CreateTransactionRequest struct {
	Type              string          `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Date              time.Time       `json:"date" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	WalletID          uuid.UUID       `json:"wallet_id" binding:"required"`
	WalletToID        *uuid.UUID      `json:"wallet_to_id"`
	IncomeCategoryID  *uuid.UUID      `json:"income_category_id"`
	ExpenseCategoryID *uuid.UUID      `json:"expense_category_id"`
	ProjectID         *uuid.UUID      `json:"project_id"`
	WorkshopJobID     *uuid.UUID      `json:"workshop_job_id"`
	IsCommonCost      bool            `json:"is_common_cost"`
	Note              string          `json:"note" binding:"max=2000"`
	IsSample          bool            `json:"is_sample"`
}

// UpdateTransactionRequest represents a partial update of a transaction.
// The merged result is re-validated against the full per-type field matrix;
// type and code are immutable. Clear* flags drop an optional reference, since
// an absent pointer field cannot be told apart from an explicit null.
type UpdateTransactionRequest struct {
	Date              *time.Time       `json:"date"`
	Amount            *decimal.Decimal `json:"amount"`
	WalletID          *uuid.UUID       `json:"wallet_id"`
	WalletToID        *uuid.UUID       `json:"wallet_to_id"`
	IncomeCategoryID  *uuid.UUID       `json:"income_category_id"`
	ExpenseCategoryID *uuid.UUID       `json:"expense_category_id"`
	ProjectID         *uuid.UUID       `json:"project_id"`
	WorkshopJobID     *uuid.UUID       `json:"workshop_job_id"`
	IsCommonCost      *bool            `json:"is_common_cost"`
	Note              *string          `json:"note" binding:"omitempty,max=2000"`
	ClearProject      bool             `json:"clear_project"`
	ClearWorkshopJob  bool             `json:"clear_workshop_job"`
	ClearNote         bool             `json:"clear_note"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                uuid.UUID       `json:"id"`
	Code              string          `json:"code"`
	Type              string          `json:"type"`
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
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         *time.Time      `json:"deleted_at,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its API representation
func ToTransactionResponse(t *ledger.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		ID:                t.ID,
		Code:              t.Code,
		Type:              t.Type.String(),
		Date:              t.Date,
		Amount:            t.Amount,
		WalletID:          t.WalletID,
		WalletToID:        t.WalletToID,
		IncomeCategoryID:  t.IncomeCategoryID,
		ExpenseCategoryID: t.ExpenseCategoryID,
		ProjectID:         t.ProjectID,
		WorkshopJobID:     t.WorkshopJobID,
		IsCommonCost:      t.IsCommonCost,
		Note:              t.Note,
		IsSample:          t.IsSample,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.DeletedAt.Valid {
		dt := t.DeletedAt.Time
		resp.DeletedAt = &dt
	}
	return resp
}

// TransactionListFilter represents listing options for transactions
type TransactionListFilter struct {
	Page           int        `form:"page" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size" binding:"omitempty,min=1,max=200"`
	Type           string     `form:"type" binding:"omitempty,oneof=INCOME EXPENSE TRANSFER"`
	WalletID       *uuid.UUID `form:"wallet_id"`
	From           *time.Time `form:"from" time_format:"2006-01-02"`
	To             *time.Time `form:"to" time_format:"2006-01-02"`
	Search         string     `form:"search" binding:"omitempty,max=200"`
	IncludeDeleted bool       `form:"include_deleted"`
}

// CreateAdjustmentRequest represents a request to record a balance correction
type CreateAdjustmentRequest struct {
	WalletID uuid.UUID       `json:"wallet_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Note     string          `json:"note" binding:"max=2000"`
	IsSample bool            `json:"is_sample"`
}

// AdjustmentResponse represents an adjustment in API responses
type AdjustmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	WalletID  uuid.UUID       `json:"wallet_id"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	IsSample  bool            `json:"is_sample"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

// ToAdjustmentResponse converts a domain adjustment to its API representation
func ToAdjustmentResponse(a *ledger.Adjustment) *AdjustmentResponse {
	resp := &AdjustmentResponse{
		ID:        a.ID,
		Code:      a.Code,
		WalletID:  a.WalletID,
		Date:      a.Date,
		Amount:    a.Amount,
		Note:      a.Note,
		IsSample:  a.IsSample,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.DeletedAt.Valid {
		dt := a.DeletedAt.Time
		resp.DeletedAt = &dt
	}
	return resp
}

// AdjustmentListFilter represents listing options for adjustments
type AdjustmentListFilter struct {
	Page           int        `form:"page" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size" binding:"omitempty,min=1,max=200"`
	WalletID       *uuid.UUID `form:"wallet_id"`
	From           *time.Time `form:"from" time_format:"2006-01-02"`
	To             *time.Time `form:"to" time_format:"2006-01-02"`
	IncludeDeleted bool       `form:"include_deleted"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// CategoryResponse represents an income or expense category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BalanceResponse represents a wallet's derived balance breakdown
type BalanceResponse struct {
	WalletID         uuid.UUID       `json:"wallet_id"`
	From             *time.Time      `json:"from,omitempty"`
	To               *time.Time      `json:"to,omitempty"`
	IncomeTotal      decimal.Decimal `json:"income_total"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	TransferInTotal  decimal.Decimal `json:"transfer_in_total"`
	TransferOutTotal decimal.Decimal `json:"transfer_out_total"`
	AdjustmentTotal  decimal.Decimal `json:"adjustment_total"`
	Net              decimal.Decimal `json:"net"`
}

// WarningResponse is one structured reconciliation finding
type WarningResponse struct {
	Kind    string `json:"kind"`
	Entity  string `json:"entity"`
	Count   int64  `json:"count"`
	Message string `json:"message"`
}

// ReconciliationResponse is the balance report plus data-quality warnings.
// Warnings never fail the request; an empty list means a clean wallet.
type ReconciliationResponse struct {
	Balance  BalanceResponse   `json:"balance"`
	Warnings []WarningResponse `json:"warnings"`
}
