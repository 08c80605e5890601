package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atelier/backend/internal/domain/cleanup"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCascadeStore implements cleanup.TxStore. It gives the cascade
// coordinator uniform row-level access to every entity that participates in
// soft delete, restore and purge.
type GormCascadeStore struct {
	db *gorm.DB
}

// NewGormCascadeStore creates a new GormCascadeStore
func NewGormCascadeStore(db *gorm.DB) *GormCascadeStore {
	return &GormCascadeStore{db: db}
}

// WithinTx runs fn against a store bound to a single database transaction,
// so a multi-entity cascade commits or rolls back as one unit.
func (s *GormCascadeStore) WithinTx(ctx context.Context, fn func(cleanup.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormCascadeStore{db: tx})
	})
}

// cascadeModel maps an entity type to its persistence model
func cascadeModel(et cleanup.EntityType) (any, error) {
	switch et {
	case cleanup.EntityTransaction:
		return &models.TransactionModel{}, nil
	case cleanup.EntityAdjustment:
		return &models.AdjustmentModel{}, nil
	case cleanup.EntityWorkshopJobItem:
		return &models.WorkshopJobItemModel{}, nil
	case cleanup.EntityWorkshopJob:
		return &models.WorkshopJobModel{}, nil
	case cleanup.EntityOrderItem:
		return &models.OrderItemModel{}, nil
	case cleanup.EntityProject:
		return &models.ProjectModel{}, nil
	case cleanup.EntityCustomerFollowUp:
		return &models.CustomerFollowUpModel{}, nil
	case cleanup.EntityCustomer:
		return &models.CustomerModel{}, nil
	case cleanup.EntitySupplier:
		return &models.SupplierModel{}, nil
	case cleanup.EntityWorkshop:
		return &models.WorkshopModel{}, nil
	case cleanup.EntityWallet:
		return &models.WalletModel{}, nil
	}
	return nil, shared.NewValidationError("entity_type", "Unknown entity type: "+et.String())
}

// childRelation describes one dependent table of a parent entity
type childRelation struct {
	childType cleanup.EntityType
	model     any
	where     string
}

// childRelations maps each parent to its dependent rows, by foreign-key
// direction. Wallet matches transactions on both the source and the
// destination column.
var childRelations = map[cleanup.EntityType][]childRelation{
	cleanup.EntityWallet: {
		{cleanup.EntityTransaction, &models.TransactionModel{}, "wallet_id = ? OR wallet_to_id = ?"},
		{cleanup.EntityAdjustment, &models.AdjustmentModel{}, "wallet_id = ?"},
	},
	cleanup.EntityWorkshopJob: {
		{cleanup.EntityTransaction, &models.TransactionModel{}, "workshop_job_id = ?"},
		{cleanup.EntityWorkshopJobItem, &models.WorkshopJobItemModel{}, "workshop_job_id = ?"},
	},
	cleanup.EntityProject: {
		{cleanup.EntityTransaction, &models.TransactionModel{}, "project_id = ?"},
		{cleanup.EntityWorkshopJob, &models.WorkshopJobModel{}, "project_id = ?"},
		{cleanup.EntityOrderItem, &models.OrderItemModel{}, "project_id = ?"},
	},
	cleanup.EntityCustomer: {
		{cleanup.EntityProject, &models.ProjectModel{}, "customer_id = ?"},
		{cleanup.EntityCustomerFollowUp, &models.CustomerFollowUpModel{}, "customer_id = ?"},
	},
	cleanup.EntityWorkshop: {
		{cleanup.EntityWorkshopJob, &models.WorkshopJobModel{}, "workshop_id = ?"},
	},
}

// State reports the lifecycle position of a row. A row that does not exist,
// because it was purged or never created, is StatePurged.
func (s *GormCascadeStore) State(ctx context.Context, et cleanup.EntityType, id uuid.UUID) (cleanup.State, error) {
	model, err := cascadeModel(et)
	if err != nil {
		return "", err
	}

	var probe struct{ DeletedAt gorm.DeletedAt }
	result := s.db.WithContext(ctx).Unscoped().Model(model).
		Select("deleted_at").
		Where("id = ?", id).
		Limit(1).
		Scan(&probe)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return cleanup.StatePurged, nil
	}
	if probe.DeletedAt.Valid {
		return cleanup.StateSoftDeleted, nil
	}
	return cleanup.StateLive, nil
}

// SoftDelete marks the row deleted
func (s *GormCascadeStore) SoftDelete(ctx context.Context, et cleanup.EntityType, id uuid.UUID) error {
	model, err := cascadeModel(et)
	if err != nil {
		return err
	}
	return softDeleteRow(ctx, s.db, model, id)
}

// Restore clears the soft-delete marker
func (s *GormCascadeStore) Restore(ctx context.Context, et cleanup.EntityType, id uuid.UUID) error {
	model, err := cascadeModel(et)
	if err != nil {
		return err
	}
	return restoreRow(ctx, s.db, model, id)
}

// HardDelete removes the row permanently. Missing rows are a no-op so purge
// retries stay idempotent.
func (s *GormCascadeStore) HardDelete(ctx context.Context, et cleanup.EntityType, id uuid.UUID) error {
	model, err := cascadeModel(et)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Unscoped().Delete(model, "id = ?", id).Error
}

// Children lists dependent rows of the entity that are in the given state
func (s *GormCascadeStore) Children(ctx context.Context, et cleanup.EntityType, id uuid.UUID, state cleanup.State) ([]cleanup.ChildRef, error) {
	relations := childRelations[et]
	if len(relations) == 0 {
		return nil, nil
	}

	var refs []cleanup.ChildRef
	for _, rel := range relations {
		args := make([]any, strings.Count(rel.where, "?"))
		for i := range args {
			args[i] = id
		}

		query := s.db.WithContext(ctx).Model(rel.model).Where(rel.where, args...)
		switch state {
		case cleanup.StateLive:
			// default scope already excludes soft-deleted rows
		case cleanup.StateSoftDeleted:
			query = query.Unscoped().Where("deleted_at IS NOT NULL")
		default:
			return nil, shared.ErrInvalidState
		}

		var ids []uuid.UUID
		if err := query.Pluck("id", &ids).Error; err != nil {
			return nil, err
		}
		for _, childID := range ids {
			refs = append(refs, cleanup.ChildRef{Type: rel.childType, ID: childID})
		}
	}
	return refs, nil
}

// MissingLiveReference returns a description of the first referenced entity
// that is not live, or "" when every reference resolves. Used to validate
// restores: a row cannot come back while a parent it points at stays deleted.
func (s *GormCascadeStore) MissingLiveReference(ctx context.Context, et cleanup.EntityType, id uuid.UUID) (string, error) {
	switch et {
	case cleanup.EntityTransaction:
		var m models.TransactionModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		checks := []struct {
			model any
			id    *uuid.UUID
			name  string
		}{
			{&models.WalletModel{}, &m.WalletID, "wallet"},
			{&models.WalletModel{}, m.WalletToID, "destination wallet"},
			{&models.IncomeCategoryModel{}, m.IncomeCategoryID, "income category"},
			{&models.ExpenseCategoryModel{}, m.ExpenseCategoryID, "expense category"},
			{&models.ProjectModel{}, m.ProjectID, "project"},
			{&models.WorkshopJobModel{}, m.WorkshopJobID, "workshop job"},
		}
		for _, check := range checks {
			if check.id == nil {
				continue
			}
			live, err := rowIsLive(ctx, s.db, check.model, *check.id)
			if err != nil {
				return "", err
			}
			if !live {
				return fmt.Sprintf("%s %s", check.name, check.id), nil
			}
		}
		return "", nil

	case cleanup.EntityAdjustment:
		var m models.AdjustmentModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		return s.requireLive(ctx, &models.WalletModel{}, m.WalletID, "wallet")

	case cleanup.EntityWorkshopJobItem:
		var m models.WorkshopJobItemModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		return s.requireLive(ctx, &models.WorkshopJobModel{}, m.WorkshopJobID, "workshop job")

	case cleanup.EntityWorkshopJob:
		var m models.WorkshopJobModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		if desc, err := s.requireLive(ctx, &models.ProjectModel{}, m.ProjectID, "project"); err != nil || desc != "" {
			return desc, err
		}
		return s.requireLive(ctx, &models.WorkshopModel{}, m.WorkshopID, "workshop")

	case cleanup.EntityOrderItem:
		var m models.OrderItemModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		return s.requireLive(ctx, &models.ProjectModel{}, m.ProjectID, "project")

	case cleanup.EntityProject:
		var m models.ProjectModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		return s.requireLive(ctx, &models.CustomerModel{}, m.CustomerID, "customer")

	case cleanup.EntityCustomerFollowUp:
		var m models.CustomerFollowUpModel
		if err := s.db.WithContext(ctx).Unscoped().First(&m, "id = ?", id).Error; err != nil {
			return "", s.translateMissing(err)
		}
		return s.requireLive(ctx, &models.CustomerModel{}, m.CustomerID, "customer")
	}

	// customers, suppliers, workshops and wallets reference nothing
	return "", nil
}

// PurgeSampleRows permanently removes every row flagged is_sample. Only
// transactions and adjustments carry the flag; they are leaves of the
// dependency graph, so ordering does not arise.
func (s *GormCascadeStore) PurgeSampleRows(ctx context.Context) (int64, error) {
	var removed int64

	result := s.db.WithContext(ctx).Unscoped().
		Where("is_sample = ?", true).
		Delete(&models.TransactionModel{})
	if result.Error != nil {
		return removed, result.Error
	}
	removed += result.RowsAffected

	result = s.db.WithContext(ctx).Unscoped().
		Where("is_sample = ?", true).
		Delete(&models.AdjustmentModel{})
	if result.Error != nil {
		return removed, result.Error
	}
	removed += result.RowsAffected

	return removed, nil
}

func (s *GormCascadeStore) requireLive(ctx context.Context, model any, id uuid.UUID, name string) (string, error) {
	live, err := rowIsLive(ctx, s.db, model, id)
	if err != nil {
		return "", err
	}
	if !live {
		return fmt.Sprintf("%s %s", name, id), nil
	}
	return "", nil
}

func (s *GormCascadeStore) translateMissing(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

// Ensure GormCascadeStore implements cleanup.TxStore
var _ cleanup.TxStore = (*GormCascadeStore)(nil)
