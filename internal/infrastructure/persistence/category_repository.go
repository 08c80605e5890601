package persistence

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIncomeCategoryRepository implements IncomeCategoryRepository using GORM
type GormIncomeCategoryRepository struct {
	db *gorm.DB
}

// NewGormIncomeCategoryRepository creates a new GormIncomeCategoryRepository
func NewGormIncomeCategoryRepository(db *gorm.DB) *GormIncomeCategoryRepository {
	return &GormIncomeCategoryRepository{db: db}
}

// Create inserts a new income category
func (r *GormIncomeCategoryRepository) Create(ctx context.Context, cat *ledger.IncomeCategory) error {
	return r.db.WithContext(ctx).Create(models.IncomeCategoryModelFromDomain(cat)).Error
}

// FindByID finds a live income category by its ID
func (r *GormIncomeCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.IncomeCategory, error) {
	var model models.IncomeCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds income categories matching the filter
func (r *GormIncomeCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.IncomeCategory, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.IncomeCategoryModel{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var catModels []models.IncomeCategoryModel
	if err := applyListOptions(query, filter, "name ASC").Find(&catModels).Error; err != nil {
		return nil, 0, err
	}

	cats := make([]ledger.IncomeCategory, len(catModels))
	for i, model := range catModels {
		cats[i] = *model.ToDomain()
	}
	return cats, total, nil
}

// SoftDelete marks the income category deleted
func (r *GormIncomeCategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.IncomeCategoryModel{}, id)
}

// GormExpenseCategoryRepository implements ExpenseCategoryRepository using GORM
type GormExpenseCategoryRepository struct {
	db *gorm.DB
}

// NewGormExpenseCategoryRepository creates a new GormExpenseCategoryRepository
func NewGormExpenseCategoryRepository(db *gorm.DB) *GormExpenseCategoryRepository {
	return &GormExpenseCategoryRepository{db: db}
}

// Create inserts a new expense category
func (r *GormExpenseCategoryRepository) Create(ctx context.Context, cat *ledger.ExpenseCategory) error {
	return r.db.WithContext(ctx).Create(models.ExpenseCategoryModelFromDomain(cat)).Error
}

// FindByID finds a live expense category by its ID
func (r *GormExpenseCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.ExpenseCategory, error) {
	var model models.ExpenseCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds expense categories matching the filter
func (r *GormExpenseCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.ExpenseCategory, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseCategoryModel{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var catModels []models.ExpenseCategoryModel
	if err := applyListOptions(query, filter, "name ASC").Find(&catModels).Error; err != nil {
		return nil, 0, err
	}

	cats := make([]ledger.ExpenseCategory, len(catModels))
	for i, model := range catModels {
		cats[i] = *model.ToDomain()
	}
	return cats, total, nil
}

// SoftDelete marks the expense category deleted
func (r *GormExpenseCategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.ExpenseCategoryModel{}, id)
}

// Ensure the repositories implement their domain interfaces
var (
	_ ledger.IncomeCategoryRepository  = (*GormIncomeCategoryRepository)(nil)
	_ ledger.ExpenseCategoryRepository = (*GormExpenseCategoryRepository)(nil)
)
