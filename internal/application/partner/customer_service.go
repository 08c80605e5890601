package partner

import (
	"context"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer CRUD and follow-up scheduling
type CustomerService struct {
	customerRepo partner.CustomerRepository
	followUpRepo partner.FollowUpRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo partner.CustomerRepository,
	followUpRepo partner.FollowUpRepository,
) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, followUpRepo: followUpRepo}
}

// Create creates a customer. The KH-code is allocated inside the insert
// transaction.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	customer.Note = req.Note

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// GetByID retrieves a live customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// List retrieves customers matching the filter
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) ([]CustomerResponse, int64, error) {
	customers, total, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// Update changes the mutable customer fields. The code never changes.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewValidationError("name", "Customer name is required")
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Note != nil {
		customer.Note = *req.Note
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// AddFollowUp schedules a follow-up against a live customer
func (s *CustomerService) AddFollowUp(ctx context.Context, customerID uuid.UUID, req CreateFollowUpRequest) (*FollowUpResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	followUp, err := partner.NewCustomerFollowUp(customerID, req.Note, req.DueDate)
	if err != nil {
		return nil, err
	}
	if err := s.followUpRepo.Create(ctx, followUp); err != nil {
		return nil, err
	}
	return ToFollowUpResponse(followUp), nil
}

// ListFollowUps retrieves the live follow-ups of a customer
func (s *CustomerService) ListFollowUps(ctx context.Context, customerID uuid.UUID) ([]FollowUpResponse, error) {
	followUps, err := s.followUpRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	responses := make([]FollowUpResponse, len(followUps))
	for i := range followUps {
		responses[i] = *ToFollowUpResponse(&followUps[i])
	}
	return responses, nil
}
