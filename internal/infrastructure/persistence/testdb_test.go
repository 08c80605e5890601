package persistence

import (
	"testing"

	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError is on, as in production, so unique violations surface as
// gorm.ErrDuplicatedKey for the allocator retry loop.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Serialize writes on one connection; in-memory SQLite has no row locks
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.WalletModel{},
		&models.TransactionModel{},
		&models.AdjustmentModel{},
		&models.IncomeCategoryModel{},
		&models.ExpenseCategoryModel{},
		&models.CustomerModel{},
		&models.CustomerFollowUpModel{},
		&models.SupplierModel{},
		&models.WorkshopModel{},
		&models.ProjectModel{},
		&models.OrderItemModel{},
		&models.WorkshopJobItemModel{},
		&models.WorkshopJobModel{},
	)
	require.NoError(t, err)

	return db
}
