package ledger

import (
	"context"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService manages the two category dimensions. They are deliberately
// separate types end to end: an income category can never reach an EXPENSE
// transaction.
type CategoryService struct {
	incomeRepo  ledger.IncomeCategoryRepository
	expenseRepo ledger.ExpenseCategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	incomeRepo ledger.IncomeCategoryRepository,
	expenseRepo ledger.ExpenseCategoryRepository,
) *CategoryService {
	return &CategoryService{incomeRepo: incomeRepo, expenseRepo: expenseRepo}
}

// CreateIncome creates an income category
func (s *CategoryService) CreateIncome(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	cat, err := ledger.NewIncomeCategory(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.incomeRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return incomeCategoryResponse(cat), nil
}

// CreateExpense creates an expense category
func (s *CategoryService) CreateExpense(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	cat, err := ledger.NewExpenseCategory(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return expenseCategoryResponse(cat), nil
}

// ListIncome retrieves income categories
func (s *CategoryService) ListIncome(ctx context.Context, filter shared.Filter) ([]CategoryResponse, int64, error) {
	cats, total, err := s.incomeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]CategoryResponse, len(cats))
	for i := range cats {
		responses[i] = *incomeCategoryResponse(&cats[i])
	}
	return responses, total, nil
}

// ListExpense retrieves expense categories
func (s *CategoryService) ListExpense(ctx context.Context, filter shared.Filter) ([]CategoryResponse, int64, error) {
	cats, total, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]CategoryResponse, len(cats))
	for i := range cats {
		responses[i] = *expenseCategoryResponse(&cats[i])
	}
	return responses, total, nil
}

// DeleteIncome soft-deletes an income category. Existing transactions keep
// their reference; only new postings are blocked.
func (s *CategoryService) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	return s.incomeRepo.SoftDelete(ctx, id)
}

// DeleteExpense soft-deletes an expense category
func (s *CategoryService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return s.expenseRepo.SoftDelete(ctx, id)
}

func incomeCategoryResponse(c *ledger.IncomeCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func expenseCategoryResponse(c *ledger.ExpenseCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
