package ledger

import (
	"context"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AdjustmentService records manual balance corrections. Adjustments are
// append-only: a wrong correction is fixed by a counter-adjustment, never by
// editing the original row.
type AdjustmentService struct {
	adjRepo    ledger.AdjustmentRepository
	walletRepo ledger.WalletRepository
}

// NewAdjustmentService creates a new AdjustmentService
func NewAdjustmentService(adjRepo ledger.AdjustmentRepository, walletRepo ledger.WalletRepository) *AdjustmentService {
	return &AdjustmentService{adjRepo: adjRepo, walletRepo: walletRepo}
}

// Create records a signed correction against a live wallet
func (s *AdjustmentService) Create(ctx context.Context, req CreateAdjustmentRequest) (*AdjustmentResponse, error) {
	if _, err := s.walletRepo.FindByID(ctx, req.WalletID); err != nil {
		return nil, translateReference(err, "wallet_id", "Wallet is not live")
	}

	adj, err := ledger.NewAdjustment(req.WalletID, req.Amount, req.Date, req.Note)
	if err != nil {
		return nil, err
	}
	adj.IsSample = req.IsSample

	if err := s.adjRepo.Create(ctx, adj); err != nil {
		return nil, err
	}
	return ToAdjustmentResponse(adj), nil
}

// GetByID retrieves a live adjustment by ID
func (s *AdjustmentService) GetByID(ctx context.Context, id uuid.UUID) (*AdjustmentResponse, error) {
	adj, err := s.adjRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAdjustmentResponse(adj), nil
}

// List retrieves adjustments matching the filter
func (s *AdjustmentService) List(ctx context.Context, filter AdjustmentListFilter) ([]AdjustmentResponse, int64, error) {
	domainFilter := ledger.AdjustmentFilter{
		Filter:   shared.DefaultFilter(),
		WalletID: filter.WalletID,
		From:     filter.From,
		To:       filter.To,
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.IncludeDeleted = filter.IncludeDeleted

	adjs, total, err := s.adjRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]AdjustmentResponse, len(adjs))
	for i := range adjs {
		responses[i] = *ToAdjustmentResponse(&adjs[i])
	}
	return responses, total, nil
}
