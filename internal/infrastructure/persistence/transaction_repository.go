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

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create allocates the type-specific code (PT/PC/TF) and inserts the row in
// one transaction. A failed insert rolls the allocation back with it.
func (r *GormTransactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.TransactionModel{}, t.Type.CodePrefix())
		if err != nil {
			return err
		}
		t.Code = code
		return tx.Create(models.TransactionModelFromDomain(t)).Error
	})
}

// FindByID finds a live transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDUnscoped finds a transaction regardless of its soft-delete state
func (r *GormTransactionRepository) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).Unscoped().First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a live transaction by code. Lookup is case-insensitive.
func (r *GormTransactionRepository) FindByCode(ctx context.Context, code string) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", ledger.NormalizeCode(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds transactions matching the filter and the total match count
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TransactionModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txModels []models.TransactionModel
	if err := applyListOptions(query, filter.Filter, "date DESC, code DESC").Find(&txModels).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]ledger.Transaction, len(txModels))
	for i, model := range txModels {
		txs[i] = *model.ToDomain()
	}
	return txs, total, nil
}

// Save updates an existing transaction. The code column is never rewritten.
func (r *GormTransactionRepository) Save(ctx context.Context, t *ledger.Transaction) error {
	model := models.TransactionModelFromDomain(t)
	// Save skips zero-valued fields on Updates, so use a full-column update
	// to let cleared optional references reach the database.
	return r.db.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("id = ?", t.ID).
		Select("*").Omit("id", "code", "created_at", "deleted_at").
		Updates(model).Error
}

// SoftDelete marks the transaction deleted, removing it from balance sums
func (r *GormTransactionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.TransactionModel{}, id)
}

// Restore brings a soft-deleted transaction back into balance sums
func (r *GormTransactionRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return restoreRow(ctx, r.db, &models.TransactionModel{}, id)
}

// CountLiveAffectingWallet counts live rows whose source or destination is
// the wallet, optionally bounded to [from, to].
func (r *GormTransactionRepository) CountLiveAffectingWallet(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("wallet_id = ? OR wallet_to_id = ?", walletID, walletID)
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

// applyFilter applies the transaction-specific filter conditions
func (r *GormTransactionRepository) applyFilter(query *gorm.DB, filter ledger.TransactionFilter) *gorm.DB {
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.WalletID != nil {
		query = query.Where("wallet_id = ? OR wallet_to_id = ?", *filter.WalletID, *filter.WalletID)
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
	return query
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ ledger.TransactionRepository = (*GormTransactionRepository)(nil)
