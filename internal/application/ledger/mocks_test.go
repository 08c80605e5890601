package ledger

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/project"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWalletRepository is a mock implementation of WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *ledger.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*ledger.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindByCode(ctx context.Context, code string) (*ledger.Wallet, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Wallet, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Wallet), args.Get(1).(int64), args.Error(2)
}

func (m *MockWalletRepository) Save(ctx context.Context, wallet *ledger.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWalletRepository) Restore(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByCode(ctx context.Context, code string) (*ledger.Transaction, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) Restore(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) CountLiveAffectingWallet(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (int64, error) {
	args := m.Called(ctx, walletID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// MockAdjustmentRepository is a mock implementation of AdjustmentRepository
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) Create(ctx context.Context, adj *ledger.Adjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Adjustment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Adjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (*ledger.Adjustment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Adjustment), args.Error(1)
}

func (m *MockAdjustmentRepository) FindAll(ctx context.Context, filter ledger.AdjustmentFilter) ([]ledger.Adjustment, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Adjustment), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdjustmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) Restore(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) CountLiveByWallet(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (int64, error) {
	args := m.Called(ctx, walletID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// MockIncomeCategoryRepository is a mock implementation of IncomeCategoryRepository
type MockIncomeCategoryRepository struct {
	mock.Mock
}

func (m *MockIncomeCategoryRepository) Create(ctx context.Context, cat *ledger.IncomeCategory) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockIncomeCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.IncomeCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.IncomeCategory), args.Error(1)
}

func (m *MockIncomeCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.IncomeCategory, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.IncomeCategory), args.Get(1).(int64), args.Error(2)
}

func (m *MockIncomeCategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockExpenseCategoryRepository is a mock implementation of ExpenseCategoryRepository
type MockExpenseCategoryRepository struct {
	mock.Mock
}

func (m *MockExpenseCategoryRepository) Create(ctx context.Context, cat *ledger.ExpenseCategory) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}

func (m *MockExpenseCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.ExpenseCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.ExpenseCategory, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.ExpenseCategory), args.Get(1).(int64), args.Error(2)
}

func (m *MockExpenseCategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkshopJobRepository is a mock implementation of WorkshopJobRepository
type MockWorkshopJobRepository struct {
	mock.Mock
}

func (m *MockWorkshopJobRepository) Create(ctx context.Context, job *project.WorkshopJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockWorkshopJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.WorkshopJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.WorkshopJob), args.Error(1)
}

func (m *MockWorkshopJobRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.WorkshopJob, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]project.WorkshopJob), args.Error(1)
}

func (m *MockWorkshopJobRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBalanceReader is a mock implementation of BalanceReader
type MockBalanceReader struct {
	mock.Mock
}

func (m *MockBalanceReader) Summary(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (ledger.BalanceSummary, ledger.SummaryStats, error) {
	args := m.Called(ctx, walletID, from, to)
	return args.Get(0).(ledger.BalanceSummary), args.Get(1).(ledger.SummaryStats), args.Error(2)
}
