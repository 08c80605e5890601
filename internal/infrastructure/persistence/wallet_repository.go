package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWalletRepository implements WalletRepository using GORM
type GormWalletRepository struct {
	db *gorm.DB
}

// NewGormWalletRepository creates a new GormWalletRepository
func NewGormWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// Create allocates the next W-code and inserts the wallet in one transaction.
// On a code collision the whole attempt rolls back and is retried.
func (r *GormWalletRepository) Create(ctx context.Context, wallet *ledger.Wallet) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.WalletModel{}, ledger.PrefixWallet)
		if err != nil {
			return err
		}
		wallet.Code = code
		return tx.Create(models.WalletModelFromDomain(wallet)).Error
	})
}

// FindByID finds a live wallet by its ID
func (r *GormWalletRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Wallet, error) {
	var model models.WalletModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDUnscoped finds a wallet regardless of its soft-delete state
func (r *GormWalletRepository) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*ledger.Wallet, error) {
	var model models.WalletModel
	if err := r.db.WithContext(ctx).Unscoped().First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a live wallet by code. Lookup is case-insensitive.
func (r *GormWalletRepository) FindByCode(ctx context.Context, code string) (*ledger.Wallet, error) {
	var model models.WalletModel
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

// FindAll finds wallets matching the filter and the total match count
func (r *GormWalletRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Wallet, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WalletModel{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var walletModels []models.WalletModel
	if err := applyListOptions(query, filter, "code ASC").Find(&walletModels).Error; err != nil {
		return nil, 0, err
	}

	wallets := make([]ledger.Wallet, len(walletModels))
	for i, model := range walletModels {
		wallets[i] = *model.ToDomain()
	}
	return wallets, total, nil
}

// Save updates an existing wallet
func (r *GormWalletRepository) Save(ctx context.Context, wallet *ledger.Wallet) error {
	return r.db.WithContext(ctx).Save(models.WalletModelFromDomain(wallet)).Error
}

// SoftDelete marks the wallet deleted. Its rows keep referencing it; balance
// reads of other wallets are unaffected.
func (r *GormWalletRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.WalletModel{}, id)
}

// Restore brings a soft-deleted wallet back to live
func (r *GormWalletRepository) Restore(ctx context.Context, id uuid.UUID) error {
	return restoreRow(ctx, r.db, &models.WalletModel{}, id)
}

// Ensure GormWalletRepository implements WalletRepository
var _ ledger.WalletRepository = (*GormWalletRepository)(nil)
