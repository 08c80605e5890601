package partner

import (
	"time"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
	Note    string `json:"note" binding:"max=2000"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Note    *string `json:"note" binding:"omitempty,max=2000"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to its API representation
func ToCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateFollowUpRequest represents a request to schedule a customer follow-up
type CreateFollowUpRequest struct {
	Note    string    `json:"note" binding:"required,max=2000"`
	DueDate time.Time `json:"due_date" binding:"required"`
}

// FollowUpResponse represents a follow-up in API responses
type FollowUpResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Note       string    `json:"note"`
	DueDate    time.Time `json:"due_date"`
	Done       bool      `json:"done"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToFollowUpResponse converts a domain follow-up to its API representation
func ToFollowUpResponse(f *partner.CustomerFollowUp) *FollowUpResponse {
	return &FollowUpResponse{
		ID:         f.ID,
		CustomerID: f.CustomerID,
		Note:       f.Note,
		DueDate:    f.DueDate,
		Done:       f.Done,
		CreatedAt:  f.CreatedAt,
	}
}

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSupplierResponse converts a domain supplier to its API representation
func ToSupplierResponse(s *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		Phone:     s.Phone,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

// CreateWorkshopRequest represents a request to register a workshop
type CreateWorkshopRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// WorkshopResponse represents a workshop in API responses
type WorkshopResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// ToWorkshopResponse converts a domain workshop to its API representation
func ToWorkshopResponse(w *partner.Workshop) *WorkshopResponse {
	return &WorkshopResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
	}
}
