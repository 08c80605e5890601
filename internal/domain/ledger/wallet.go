package ledger

import (
	"github.com/atelier/backend/internal/domain/shared"
)

// WalletType classifies where the money physically sits
type WalletType string

const (
	WalletTypeCash  WalletType = "CASH"
	WalletTypeBank  WalletType = "BANK"
	WalletTypeOther WalletType = "OTHER"
)

// IsValid checks if the type is a valid WalletType
func (t WalletType) IsValid() bool {
	switch t {
	case WalletTypeCash, WalletTypeBank, WalletTypeOther:
		return true
	}
	return false
}

// String returns the string representation of WalletType
func (t WalletType) String() string {
	return string(t)
}

// Wallet is a cash/bank account. Its balance is never stored: it is always
// derived from the live transaction and adjustment rows on read.
type Wallet struct {
	shared.BaseAggregateRoot
	Code string     `json:"code"`
	Name string     `json:"name"`
	Type WalletType `json:"type"`
	Note string     `json:"note"`
}

// NewWallet creates a new wallet. The code is assigned by the allocator at
// persistence time, inside the same transaction as the insert.
func NewWallet(name string, walletType WalletType, note string) (*Wallet, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "Wallet name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("name", "Wallet name cannot exceed 200 characters")
	}
	if !walletType.IsValid() {
		return nil, shared.NewValidationError("type", "Wallet type must be CASH, BANK or OTHER")
	}

	return &Wallet{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              walletType,
		Note:              note,
	}, nil
}

// Update changes the mutable wallet fields. Code is never touched.
func (w *Wallet) Update(name string, walletType WalletType, note string) error {
	if name == "" {
		return shared.NewValidationError("name", "Wallet name is required")
	}
	if !walletType.IsValid() {
		return shared.NewValidationError("type", "Wallet type must be CASH, BANK or OTHER")
	}
	w.Name = name
	w.Type = walletType
	w.Note = note
	return nil
}
