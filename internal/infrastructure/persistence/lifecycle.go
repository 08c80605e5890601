package persistence

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// softDeleteRow sets the soft-delete marker on a row. Deleting a row that is
// already soft-deleted is a no-op; a row that never existed (or was purged)
// is ErrNotFound.
func softDeleteRow(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Unscoped().Model(model).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
	}
	return nil
}

// restoreRow clears the soft-delete marker. Restoring a live row is a no-op;
// a missing row is ErrNotFound. Reference re-validation is the caller's job.
func restoreRow(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) error {
	result := db.WithContext(ctx).Unscoped().Model(model).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(model).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
	}
	return nil
}

// rowIsLive reports whether the row exists and is not soft-deleted
func rowIsLive(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
