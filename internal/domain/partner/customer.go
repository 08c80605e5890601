package partner

import (
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Document code prefixes for partner entities
const (
	CustomerCodePrefix = "KH"
	SupplierCodePrefix = "NCC"
	WorkshopCodePrefix = "X"
)

// Customer is a CRM partner. Its dependent children (projects, follow-ups)
// must be purged before the customer itself.
type Customer struct {
	shared.BaseAggregateRoot
	Code    string `json:"code"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// NewCustomer creates a new customer
func NewCustomer(name, phone, address string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "Customer name is required")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
		Address:           address,
	}, nil
}

// CustomerFollowUp is a scheduled CRM touchpoint belonging to a customer
type CustomerFollowUp struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID `json:"customer_id"`
	Note       string    `json:"note"`
	DueDate    time.Time `json:"due_date"`
	Done       bool      `json:"done"`
}

// NewCustomerFollowUp creates a follow-up for a customer
func NewCustomerFollowUp(customerID uuid.UUID, note string, dueDate time.Time) (*CustomerFollowUp, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("customer_id", "Customer is required")
	}
	if note == "" {
		return nil, shared.NewValidationError("note", "Follow-up note is required")
	}
	return &CustomerFollowUp{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Note:              note,
		DueDate:           dueDate,
	}, nil
}
