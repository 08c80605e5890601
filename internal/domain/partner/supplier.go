package partner

import (
	"github.com/atelier/backend/internal/domain/shared"
)

// Supplier is a purchasing partner
type Supplier struct {
	shared.BaseAggregateRoot
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Note  string `json:"note"`
}

// NewSupplier creates a new supplier
func NewSupplier(name, phone string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "Supplier name is required")
	}
	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             phone,
	}, nil
}

// Workshop is a production site that executes workshop jobs
type Workshop struct {
	shared.BaseAggregateRoot
	Code string `json:"code"`
	Name string `json:"name"`
	Note string `json:"note"`
}

// NewWorkshop creates a new workshop
func NewWorkshop(name string) (*Workshop, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "Workshop name is required")
	}
	return &Workshop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}
