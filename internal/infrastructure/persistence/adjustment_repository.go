package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdjustmentRepository implements AdjustmentRepository using GORM
type GormAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormAdjustmentRepository creates a new GormAdjustmentRepository
func NewGormAdjustmentRepository(db *gorm.DB) *GormAdjustmentRepository {
	return &GormAdjustmentRepository{db: db}
}

// Create allocates the next AD-code and inserts the adjustment atomically
func (r *GormAdjustmentRepository) Create(ctx context.Context, adj *ledger.Adjustment) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.AdjustmentModel{}, ledger.PrefixAdjustment)
		if err != nil {
			return err
		}
		adj.Code = code
		return tx.Create(models.AdjustmentModelFromDomain(adj)).Error
	})
}

// FindByID finds a live adjustment by its ID
func (r *GormAdjustmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Adjustment, error) {
	var model models.AdjustmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDUnscoped finds an adjustment regardless of its soft-delete state
func (r *GormAdjustmentRepository) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*ledger.Adjustment, error) {
	var model models.AdjustmentModel
	if err := r.db.WithContext(ctx).Unscoped().First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds adjustments matching the filter and the total match count
func (r *GormAdjustmentRepository) FindAll(ctx context.Context, filter ledger.AdjustmentFilter) ([]ledger.Adjustment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdjustmentModel{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.WalletID != nil {
		query = query.Where("wallet_id = ?", *filter.WalletID)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", ledger.NormalizeDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", ledger.EndOfDay(*filter.To))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(code) LIKE LOWER(?) OR LOWER(note) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var adjModels []models.AdjustmentModel
	if err := applyListOptions(query, filter.Filter, "date DESC, code DESC").Find(&adjModels).Error; err != nil {
		return nil, 0, err
	}

	adjs := make([]ledger.Adjustment, len(adjModels))
	for i, model := range adjModels {
		adjs[i] = *model.ToDomain()
	}
	return adjs, total, nil
}

// SoftDelete marks the adjustment deleted, removing it from balance sums
func (r *GormAdjustmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.AdjustmentModel{}, id)
}

// Restore brings a soft-deleted adjustment back into balance sums
func (r *GormAdjustmentRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return restoreRow(ctx, r.db, &models.AdjustmentModel{}, id)
}

// CountLiveByWallet counts live adjustments on the wallet, optionally bounded
// to [from, to].
func (r *GormAdjustmentRepository) CountLiveByWallet(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdjustmentModel{}).
		Where("wallet_id = ?", walletID)
	if from != nil {
		query = query.Where("date >= ?", ledger.NormalizeDate(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", ledger.EndOfDay(*to))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormAdjustmentRepository implements AdjustmentRepository
var _ ledger.AdjustmentRepository = (*GormAdjustmentRepository)(nil)
