package ledger

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionFilter defines the listing surface consumed by the UI layer
type TransactionFilter struct {
	shared.Filter
	Type     *TransactionType
	WalletID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// AdjustmentFilter defines filtering for adjustment listings
type AdjustmentFilter struct {
	shared.Filter
	WalletID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// WalletRepository persists wallets. Create allocates the wallet code and
// inserts the row in one database transaction.
type WalletRepository interface {
	Create(ctx context.Context, wallet *Wallet) error
	FindByID(ctx context.Context, id uuid.UUID) (*Wallet, error)
	FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*Wallet, error)
	FindByCode(ctx context.Context, code string) (*Wallet, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Wallet, int64, error)
	Save(ctx context.Context, wallet *Wallet) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository persists money-movement records. Create allocates the
// type-specific code and inserts the row atomically; a failed insert never
// leaves an orphaned code.
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByCode(ctx context.Context, code string) (*Transaction, error)
	FindAll(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error)
	Save(ctx context.Context, tx *Transaction) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	// CountLiveAffectingWallet counts live rows whose source or destination is
	// the wallet, optionally bounded to [from, to].
	CountLiveAffectingWallet(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (int64, error)
}

// AdjustmentRepository persists manual balance corrections with the same
// allocator and atomicity discipline as transactions.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *Adjustment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Adjustment, error)
	FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*Adjustment, error)
	FindAll(ctx context.Context, filter AdjustmentFilter) ([]Adjustment, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	CountLiveByWallet(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (int64, error)
}

// IncomeCategoryRepository persists income categories
type IncomeCategoryRepository interface {
	Create(ctx context.Context, cat *IncomeCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*IncomeCategory, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]IncomeCategory, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ExpenseCategoryRepository persists expense categories
type ExpenseCategoryRepository interface {
	Create(ctx context.Context, cat *ExpenseCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*ExpenseCategory, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ExpenseCategory, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// SummaryStats reports how many rows a balance computation actually summed,
// used by the reconciliation cross-check against independent counts.
type SummaryStats struct {
	TransactionRows int64
	AdjustmentRows  int64
}

// BalanceReader computes a wallet's balance breakdown inside a single
// read-consistent snapshot, never from a stored counter.
type BalanceReader interface {
	Summary(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (BalanceSummary, SummaryStats, error)
}
