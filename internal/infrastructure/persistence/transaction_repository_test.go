package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	wallets    *GormWalletRepository
	txs        *GormTransactionRepository
	adjs       *GormAdjustmentRepository
	incomeCats *GormIncomeCategoryRepository
	expenseCat *GormExpenseCategoryRepository

	cash  *ledger.Wallet
	bank  *ledger.Wallet
	sales *ledger.IncomeCategory
	rent  *ledger.ExpenseCategory
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db := setupTestDB(t)
	ctx := context.Background()

	f := &ledgerFixture{
		wallets:    NewGormWalletRepository(db),
		txs:        NewGormTransactionRepository(db),
		adjs:       NewGormAdjustmentRepository(db),
		incomeCats: NewGormIncomeCategoryRepository(db),
		expenseCat: NewGormExpenseCategoryRepository(db),
	}

	var err error
	f.cash, err = ledger.NewWallet("Cash", ledger.WalletTypeCash, "")
	require.NoError(t, err)
	require.NoError(t, f.wallets.Create(ctx, f.cash))

	f.bank, err = ledger.NewWallet("Bank", ledger.WalletTypeBank, "")
	require.NoError(t, err)
	require.NoError(t, f.wallets.Create(ctx, f.bank))

	f.sales, err = ledger.NewIncomeCategory("Sales")
	require.NoError(t, err)
	require.NoError(t, f.incomeCats.Create(ctx, f.sales))

	f.rent, err = ledger.NewExpenseCategory("Rent")
	require.NoError(t, err)
	require.NoError(t, f.expenseCat.Create(ctx, f.rent))

	return f
}

func (f *ledgerFixture) income(t *testing.T, amount string, date time.Time) *ledger.Transaction {
	t.Helper()
	tx := ledger.NewTransaction(ledger.TransactionTypeIncome, date, decimal.RequireFromString(amount), f.cash.ID)
	tx.IncomeCategoryID = &f.sales.ID
	require.NoError(t, tx.Validate())
	require.NoError(t, f.txs.Create(context.Background(), tx))
	return tx
}

func (f *ledgerFixture) expense(t *testing.T, amount string, date time.Time) *ledger.Transaction {
	t.Helper()
	tx := ledger.NewTransaction(ledger.TransactionTypeExpense, date, decimal.RequireFromString(amount), f.cash.ID)
	tx.ExpenseCategoryID = &f.rent.ID
	require.NoError(t, tx.Validate())
	require.NoError(t, f.txs.Create(context.Background(), tx))
	return tx
}

func (f *ledgerFixture) transfer(t *testing.T, amount string, date time.Time) *ledger.Transaction {
	t.Helper()
	tx := ledger.NewTransaction(ledger.TransactionTypeTransfer, date, decimal.RequireFromString(amount), f.cash.ID)
	tx.WalletToID = &f.bank.ID
	require.NoError(t, tx.Validate())
	require.NoError(t, f.txs.Create(context.Background(), tx))
	return tx
}

func TestGormTransactionRepository_Create(t *testing.T) {
	f := newLedgerFixture(t)
	day := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	t.Run("each type draws from its own code family", func(t *testing.T) {
		assert.Equal(t, "PT0001", f.income(t, "100", day).Code)
		assert.Equal(t, "PC0001", f.expense(t, "40", day).Code)
		assert.Equal(t, "TF0001", f.transfer(t, "25", day).Code)
		assert.Equal(t, "PT0002", f.income(t, "10", day).Code)
	})

	t.Run("date is normalized to start of day", func(t *testing.T) {
		tx := f.income(t, "5", day)
		stored, err := f.txs.FindByID(context.Background(), tx.ID)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), stored.Date.UTC())
	})
}

func TestGormTransactionRepository_FindAll(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	f.income(t, "100", march)
	f.expense(t, "40", march)
	f.transfer(t, "25", april)
	deleted := f.income(t, "7", april)
	require.NoError(t, f.txs.SoftDelete(ctx, deleted.ID))

	t.Run("default listing excludes soft-deleted rows", func(t *testing.T) {
		rows, total, err := f.txs.FindAll(ctx, ledger.TransactionFilter{Filter: shared.DefaultFilter()})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, rows, 3)
	})

	t.Run("include deleted brings them back", func(t *testing.T) {
		filter := ledger.TransactionFilter{Filter: shared.DefaultFilter()}
		filter.IncludeDeleted = true
		_, total, err := f.txs.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("filters by type", func(t *testing.T) {
		income := ledger.TransactionTypeIncome
		rows, total, err := f.txs.FindAll(ctx, ledger.TransactionFilter{
			Filter: shared.DefaultFilter(),
			Type:   &income,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "PT0001", rows[0].Code)
	})

	t.Run("wallet filter includes transfer destinations", func(t *testing.T) {
		rows, total, err := f.txs.FindAll(ctx, ledger.TransactionFilter{
			Filter:   shared.DefaultFilter(),
			WalletID: &f.bank.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, ledger.TransactionTypeTransfer, rows[0].Type)
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		_, total, err := f.txs.FindAll(ctx, ledger.TransactionFilter{
			Filter: shared.DefaultFilter(),
			From:   &from,
			To:     &to,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("search matches code", func(t *testing.T) {
		filter := ledger.TransactionFilter{Filter: shared.DefaultFilter()}
		filter.Search = "tf"
		rows, total, err := f.txs.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "TF0001", rows[0].Code)
	})
}

func TestGormTransactionRepository_Save(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("clearing an optional reference persists", func(t *testing.T) {
		tx := f.expense(t, "40", day)
		projectID := uuid.New()
		tx.ProjectID = &projectID
		require.NoError(t, f.txs.Save(ctx, tx))

		tx.ProjectID = nil
		tx.Note = "reassigned"
		require.NoError(t, f.txs.Save(ctx, tx))

		stored, err := f.txs.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.ProjectID)
		assert.Equal(t, "reassigned", stored.Note)
	})

	t.Run("the code survives updates", func(t *testing.T) {
		tx := f.income(t, "9", day)
		code := tx.Code
		tx.Note = "edited"
		require.NoError(t, f.txs.Save(ctx, tx))

		stored, err := f.txs.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.Equal(t, code, stored.Code)
	})
}

func TestGormTransactionRepository_CountLiveAffectingWallet(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	f.income(t, "100", day)
	f.transfer(t, "25", day)
	deleted := f.expense(t, "40", day)
	require.NoError(t, f.txs.SoftDelete(ctx, deleted.ID))

	t.Run("counts source and destination rows, live only", func(t *testing.T) {
		count, err := f.txs.CountLiveAffectingWallet(ctx, f.cash.ID, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = f.txs.CountLiveAffectingWallet(ctx, f.bank.ID, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("honors the date range", func(t *testing.T) {
		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		count, err := f.txs.CountLiveAffectingWallet(ctx, f.cash.ID, &from, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
