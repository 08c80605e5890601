package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGormWalletRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWalletRepository(db)
	ctx := context.Background()

	t.Run("assigns sequential W codes", func(t *testing.T) {
		first, err := ledger.NewWallet("Cash drawer", ledger.WalletTypeCash, "front desk")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))
		assert.Equal(t, "W0001", first.Code)

		second, err := ledger.NewWallet("Main account", ledger.WalletTypeBank, "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))
		assert.Equal(t, "W0002", second.Code)
	})
}

func TestGormWalletRepository_FindByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWalletRepository(db)
	ctx := context.Background()

	w, err := ledger.NewWallet("Cash drawer", ledger.WalletTypeCash, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, w))

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "w0001")
		require.NoError(t, err)
		assert.Equal(t, w.ID, found.ID)
		assert.Equal(t, "W0001", found.Code)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, "W9999")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormWalletRepository_SoftDeleteAndRestore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWalletRepository(db)
	ctx := context.Background()

	w, err := ledger.NewWallet("Cash drawer", ledger.WalletTypeCash, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, w))

	t.Run("soft delete hides the wallet from ordinary reads", func(t *testing.T) {
		require.NoError(t, repo.SoftDelete(ctx, w.ID))

		_, err := repo.FindByID(ctx, w.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		unscoped, err := repo.FindByIDUnscoped(ctx, w.ID)
		require.NoError(t, err)
		assert.True(t, unscoped.IsDeleted())
	})

	t.Run("soft delete again is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.SoftDelete(ctx, w.ID))
	})

	t.Run("restore brings it back with the same code", func(t *testing.T) {
		require.NoError(t, repo.Restore(ctx, w.ID))

		found, err := repo.FindByID(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, "W0001", found.Code)
		assert.False(t, found.IsDeleted())
	})

	t.Run("restore of a live wallet is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Restore(ctx, w.ID))
	})

	t.Run("missing rows are not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.SoftDelete(ctx, uuid.New()), shared.ErrNotFound)
		assert.ErrorIs(t, repo.Restore(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormWalletRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWalletRepository(db)
	ctx := context.Background()

	names := []string{"Cash drawer", "Main account", "Petty cash"}
	for _, name := range names {
		w, err := ledger.NewWallet(name, ledger.WalletTypeCash, "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, w))
	}

	t.Run("lists live wallets with total", func(t *testing.T) {
		wallets, total, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, wallets, 3)
	})

	t.Run("search matches name", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "cash"
		wallets, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, wallets, 2)
	})

	t.Run("soft-deleted wallets only appear when requested", func(t *testing.T) {
		first, err := repo.FindByCode(ctx, "W0001")
		require.NoError(t, err)
		require.NoError(t, repo.SoftDelete(ctx, first.ID))

		_, total, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		filter := shared.DefaultFilter()
		filter.IncludeDeleted = true
		_, total, err = repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("pagination bounds the page", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 1
		filter.Page = 2
		wallets, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, wallets, 1)
	})
}

func TestGormWalletRepository_QueryFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	repo := NewGormWalletRepository(gormDB)

	t.Run("propagates driver errors", func(t *testing.T) {
		walletID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "wallets"`).
			WithArgs(walletID, 1).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByID(context.Background(), walletID)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
