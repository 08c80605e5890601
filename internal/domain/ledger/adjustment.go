package ledger

import (
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Adjustment is a manual, category-less balance correction on a wallet.
// Amount is signed: positive increases the wallet, negative decreases it.
// Adjustments are excluded from ordinary transaction totals but included in
// the wallet's net balance.
type Adjustment struct {
	shared.BaseAggregateRoot
	Code     string          `json:"code"`
	WalletID uuid.UUID       `json:"wallet_id"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	IsSample bool            `json:"is_sample"`
}

// NewAdjustment creates an adjustment. The code is assigned by the allocator
// inside the insert transaction.
func NewAdjustment(walletID uuid.UUID, amount decimal.Decimal, date time.Time, note string) (*Adjustment, error) {
	if walletID == uuid.Nil {
		return nil, shared.NewValidationError("wallet_id", "Wallet is required")
	}
	if amount.IsZero() {
		return nil, shared.NewValidationError("amount", "Adjustment amount must be non-zero")
	}

	return &Adjustment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WalletID:          walletID,
		Date:              NormalizeDate(date),
		Amount:            amount,
		Note:              note,
	}, nil
}
