package partner

import (
	"context"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles suppliers and workshops. Both are thin partner
// registries; workshops additionally anchor outsourced jobs.
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	workshopRepo partner.WorkshopRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(
	supplierRepo partner.SupplierRepository,
	workshopRepo partner.WorkshopRepository,
) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, workshopRepo: workshopRepo}
}

// CreateSupplier creates a supplier with an NCC-code
func (s *SupplierService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// GetSupplier retrieves a live supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// ListSuppliers retrieves suppliers matching the filter
func (s *SupplierService) ListSuppliers(ctx context.Context, filter shared.Filter) ([]SupplierResponse, int64, error) {
	suppliers, total, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = *ToSupplierResponse(&suppliers[i])
	}
	return responses, total, nil
}

// CreateWorkshop registers a workshop with an X-code
func (s *SupplierService) CreateWorkshop(ctx context.Context, req CreateWorkshopRequest) (*WorkshopResponse, error) {
	workshop, err := partner.NewWorkshop(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.workshopRepo.Create(ctx, workshop); err != nil {
		return nil, err
	}
	return ToWorkshopResponse(workshop), nil
}

// GetWorkshop retrieves a live workshop by ID
func (s *SupplierService) GetWorkshop(ctx context.Context, id uuid.UUID) (*WorkshopResponse, error) {
	workshop, err := s.workshopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWorkshopResponse(workshop), nil
}

// ListWorkshops retrieves workshops matching the filter
func (s *SupplierService) ListWorkshops(ctx context.Context, filter shared.Filter) ([]WorkshopResponse, int64, error) {
	workshops, total, err := s.workshopRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]WorkshopResponse, len(workshops))
	for i := range workshops {
		responses[i] = *ToWorkshopResponse(&workshops[i])
	}
	return responses, total, nil
}
