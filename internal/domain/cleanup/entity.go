package cleanup

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EntityType names an entity participating in cascade deletion
type EntityType string

const (
	EntityTransaction      EntityType = "transaction"
	EntityAdjustment       EntityType = "adjustment"
	EntityWorkshopJobItem  EntityType = "workshop_job_item"
	EntityWorkshopJob      EntityType = "workshop_job"
	EntityOrderItem        EntityType = "order_item"
	EntityProject          EntityType = "project"
	EntityCustomerFollowUp EntityType = "customer_follow_up"
	EntityCustomer         EntityType = "customer"
	EntitySupplier         EntityType = "supplier"
	EntityWorkshop         EntityType = "workshop"
	EntityWallet           EntityType = "wallet"
)

// PurgeOrder is the fixed child-before-parent dependency order, derived from
// foreign-key direction. It is enforced regardless of call order; the
// hierarchy has no cycles, so recursion over it is depth-bounded.
var PurgeOrder = []EntityType{
	EntityTransaction,
	EntityWorkshopJobItem,
	EntityWorkshopJob,
	EntityOrderItem,
	EntityProject,
	EntityCustomerFollowUp,
	EntityCustomer,
	EntitySupplier,
	EntityWorkshop,
}

// IsValid checks whether the type participates in cascade deletion
func (e EntityType) IsValid() bool {
	switch e {
	case EntityTransaction, EntityAdjustment, EntityWorkshopJobItem, EntityWorkshopJob,
		EntityOrderItem, EntityProject, EntityCustomerFollowUp, EntityCustomer,
		EntitySupplier, EntityWorkshop, EntityWallet:
		return true
	}
	return false
}

// String returns the string representation of EntityType
func (e EntityType) String() string {
	return string(e)
}

// ParseEntityType converts a request string into an EntityType
func ParseEntityType(s string) (EntityType, error) {
	et := EntityType(s)
	if !et.IsValid() {
		return "", shared.NewValidationError("entity_type", "Unknown entity type: "+s)
	}
	return et, nil
}

// State is the lifecycle position of a row. Transitions are
// LIVE -> SOFT_DELETED -> PURGED; restore moves SOFT_DELETED back to LIVE.
type State string

const (
	StateLive        State = "LIVE"
	StateSoftDeleted State = "SOFT_DELETED"
	StatePurged      State = "PURGED"
)

// ChildRef identifies a dependent row of a parent entity
type ChildRef struct {
	Type EntityType
	ID   uuid.UUID
}

// Store gives the coordinator row-level access to every cascade entity.
// Implementations scope all operations to the transaction they were opened in.
type Store interface {
	// State reports the lifecycle position; missing rows are StatePurged.
	State(ctx context.Context, et EntityType, id uuid.UUID) (State, error)
	SoftDelete(ctx context.Context, et EntityType, id uuid.UUID) error
	Restore(ctx context.Context, et EntityType, id uuid.UUID) error
	// HardDelete removes the row permanently. Missing rows are a no-op.
	HardDelete(ctx context.Context, et EntityType, id uuid.UUID) error
	// Children lists dependent rows of the entity in the given state.
	Children(ctx context.Context, et EntityType, id uuid.UUID, state State) ([]ChildRef, error)
	// MissingLiveReference returns the description of a referenced entity that
	// is not live, or "" when every reference is live.
	MissingLiveReference(ctx context.Context, et EntityType, id uuid.UUID) (string, error)
	// PurgeSampleRows permanently removes all rows flagged is_sample,
	// children first. Returns the number of rows removed.
	PurgeSampleRows(ctx context.Context) (int64, error)
}

// TxStore opens a database transaction around a sequence of Store calls
type TxStore interface {
	Store
	WithinTx(ctx context.Context, fn func(Store) error) error
}
