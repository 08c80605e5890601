package partner

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository persists customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	Save(ctx context.Context, customer *Customer) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// FollowUpRepository persists customer follow-ups
type FollowUpRepository interface {
	Create(ctx context.Context, followUp *CustomerFollowUp) error
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]CustomerFollowUp, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository persists suppliers
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// WorkshopRepository persists workshops
type WorkshopRepository interface {
	Create(ctx context.Context, workshop *Workshop) error
	FindByID(ctx context.Context, id uuid.UUID) (*Workshop, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Workshop, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
