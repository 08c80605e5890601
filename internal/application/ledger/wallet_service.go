package ledger

import (
	"context"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WalletService handles wallet CRUD. Deletion and restore go through the
// cascade coordinator, not this service, so dependent rows are handled.
type WalletService struct {
	walletRepo ledger.WalletRepository
}

// NewWalletService creates a new WalletService
func NewWalletService(walletRepo ledger.WalletRepository) *WalletService {
	return &WalletService{walletRepo: walletRepo}
}

// Create creates a new wallet. The W-code is allocated inside the insert
// transaction.
func (s *WalletService) Create(ctx context.Context, req CreateWalletRequest) (*WalletResponse, error) {
	wallet, err := ledger.NewWallet(req.Name, ledger.WalletType(req.Type), req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return ToWalletResponse(wallet), nil
}

// GetByID retrieves a live wallet by ID
func (s *WalletService) GetByID(ctx context.Context, id uuid.UUID) (*WalletResponse, error) {
	wallet, err := s.walletRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWalletResponse(wallet), nil
}

// GetByCode retrieves a live wallet by its code, case-insensitively
func (s *WalletService) GetByCode(ctx context.Context, code string) (*WalletResponse, error) {
	wallet, err := s.walletRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return ToWalletResponse(wallet), nil
}

// List retrieves wallets matching the filter
func (s *WalletService) List(ctx context.Context, filter shared.Filter) ([]WalletResponse, int64, error) {
	wallets, total, err := s.walletRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = *ToWalletResponse(&wallets[i])
	}
	return responses, total, nil
}

// Update changes the mutable wallet fields. The code never changes.
func (s *WalletService) Update(ctx context.Context, id uuid.UUID, req UpdateWalletRequest) (*WalletResponse, error) {
	wallet, err := s.walletRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := wallet.Name
	if req.Name != nil {
		name = *req.Name
	}
	walletType := wallet.Type
	if req.Type != nil {
		walletType = ledger.WalletType(*req.Type)
	}
	note := wallet.Note
	if req.Note != nil {
		note = *req.Note
	}

	if err := wallet.Update(name, walletType, note); err != nil {
		return nil, err
	}
	if err := s.walletRepo.Save(ctx, wallet); err != nil {
		return nil, err
	}
	return ToWalletResponse(wallet), nil
}
