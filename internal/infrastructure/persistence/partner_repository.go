package persistence

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create allocates the next KH-code and inserts the customer atomically
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.CustomerModel{}, ledger.CodePrefix(partner.CustomerCodePrefix))
		if err != nil {
			return err
		}
		customer.Code = code
		return tx.Create(models.CustomerModelFromDomain(customer)).Error
	})
}

// FindByID finds a live customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.CustomerModel{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(code) LIKE LOWER(?) OR phone LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customerModels []models.CustomerModel
	if err := applyListOptions(query, filter, "code ASC").Find(&customerModels).Error; err != nil {
		return nil, 0, err
	}

	customers := make([]partner.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, total, nil
}

// Save updates an existing customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(models.CustomerModelFromDomain(customer)).Error
}

// SoftDelete marks the customer deleted
func (r *GormCustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.CustomerModel{}, id)
}

// GormFollowUpRepository implements FollowUpRepository using GORM
type GormFollowUpRepository struct {
	db *gorm.DB
}

// NewGormFollowUpRepository creates a new GormFollowUpRepository
func NewGormFollowUpRepository(db *gorm.DB) *GormFollowUpRepository {
	return &GormFollowUpRepository{db: db}
}

// Create inserts a new follow-up
func (r *GormFollowUpRepository) Create(ctx context.Context, followUp *partner.CustomerFollowUp) error {
	return r.db.WithContext(ctx).Create(models.CustomerFollowUpModelFromDomain(followUp)).Error
}

// FindByCustomer finds the live follow-ups of a customer
func (r *GormFollowUpRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]partner.CustomerFollowUp, error) {
	var followUpModels []models.CustomerFollowUpModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("due_date ASC").
		Find(&followUpModels).Error; err != nil {
		return nil, err
	}

	followUps := make([]partner.CustomerFollowUp, len(followUpModels))
	for i, model := range followUpModels {
		followUps[i] = *model.ToDomain()
	}
	return followUps, nil
}

// SoftDelete marks the follow-up deleted
func (r *GormFollowUpRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.CustomerFollowUpModel{}, id)
}

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Create allocates the next NCC-code and inserts the supplier atomically
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *partner.Supplier) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.SupplierModel{}, ledger.CodePrefix(partner.SupplierCodePrefix))
		if err != nil {
			return err
		}
		supplier.Code = code
		return tx.Create(models.SupplierModelFromDomain(supplier)).Error
	})
}

// FindByID finds a live supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SupplierModel{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(code) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var supplierModels []models.SupplierModel
	if err := applyListOptions(query, filter, "code ASC").Find(&supplierModels).Error; err != nil {
		return nil, 0, err
	}

	suppliers := make([]partner.Supplier, len(supplierModels))
	for i, model := range supplierModels {
		suppliers[i] = *model.ToDomain()
	}
	return suppliers, total, nil
}

// SoftDelete marks the supplier deleted
func (r *GormSupplierRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.SupplierModel{}, id)
}

// GormWorkshopRepository implements WorkshopRepository using GORM
type GormWorkshopRepository struct {
	db *gorm.DB
}

// NewGormWorkshopRepository creates a new GormWorkshopRepository
func NewGormWorkshopRepository(db *gorm.DB) *GormWorkshopRepository {
	return &GormWorkshopRepository{db: db}
}

// Create allocates the next X-code and inserts the workshop atomically
func (r *GormWorkshopRepository) Create(ctx context.Context, workshop *partner.Workshop) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.WorkshopModel{}, ledger.CodePrefix(partner.WorkshopCodePrefix))
		if err != nil {
			return err
		}
		workshop.Code = code
		return tx.Create(models.WorkshopModelFromDomain(workshop)).Error
	})
}

// FindByID finds a live workshop by its ID
func (r *GormWorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Workshop, error) {
	var model models.WorkshopModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds workshops matching the filter
func (r *GormWorkshopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Workshop, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WorkshopModel{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(code) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workshopModels []models.WorkshopModel
	if err := applyListOptions(query, filter, "code ASC").Find(&workshopModels).Error; err != nil {
		return nil, 0, err
	}

	workshops := make([]partner.Workshop, len(workshopModels))
	for i, model := range workshopModels {
		workshops[i] = *model.ToDomain()
	}
	return workshops, total, nil
}

// SoftDelete marks the workshop deleted
func (r *GormWorkshopRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.WorkshopModel{}, id)
}

// Ensure the repositories implement their domain interfaces
var (
	_ partner.CustomerRepository = (*GormCustomerRepository)(nil)
	_ partner.FollowUpRepository = (*GormFollowUpRepository)(nil)
	_ partner.SupplierRepository = (*GormSupplierRepository)(nil)
	_ partner.WorkshopRepository = (*GormWorkshopRepository)(nil)
)
