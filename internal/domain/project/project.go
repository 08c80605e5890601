package project

import (
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Document code prefixes for project entities
const (
	ProjectCodePrefix     = "DA"
	WorkshopJobCodePrefix = "CV"
)

// ProjectStatus tracks a customer order through its lifecycle
type ProjectStatus string

const (
	ProjectStatusOpen      ProjectStatus = "OPEN"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusCancelled ProjectStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ProjectStatus
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusOpen, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a customer order / cost center. Transactions, order items and
// workshop jobs reference it; all of them must be purged before the project.
type Project struct {
	shared.BaseAggregateRoot
	Code       string        `json:"code"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Name       string        `json:"name"`
	Status     ProjectStatus `json:"status"`
	Note       string        `json:"note"`
}

// NewProject creates a new project for a customer
func NewProject(customerID uuid.UUID, name string) (*Project, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("customer_id", "Customer is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("name", "Project name is required")
	}
	return &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Name:              name,
		Status:            ProjectStatusOpen,
	}, nil
}

// OrderItem is a sold line item belonging to a project
type OrderItem struct {
	shared.BaseAggregateRoot
	ProjectID   uuid.UUID       `json:"project_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// NewOrderItem creates an order item under a project
func NewOrderItem(projectID uuid.UUID, description string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewValidationError("project_id", "Project is required")
	}
	if description == "" {
		return nil, shared.NewValidationError("description", "Description is required")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("quantity", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewValidationError("unit_price", "Unit price must be non-negative")
	}
	return &OrderItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectID:         projectID,
		Description:       description,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
	}, nil
}

// Total returns quantity x unit price
func (i *OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
