package ledger

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/project"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionService records and edits money movements. Every write path,
// create and update alike, re-runs the full per-type validation matrix and
// re-checks that every referenced row is live.
type TransactionService struct {
	txRepo         ledger.TransactionRepository
	walletRepo     ledger.WalletRepository
	incomeCatRepo  ledger.IncomeCategoryRepository
	expenseCatRepo ledger.ExpenseCategoryRepository
	projectRepo    project.ProjectRepository
	jobRepo        project.WorkshopJobRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	txRepo ledger.TransactionRepository,
	walletRepo ledger.WalletRepository,
	incomeCatRepo ledger.IncomeCategoryRepository,
	expenseCatRepo ledger.ExpenseCategoryRepository,
	projectRepo project.ProjectRepository,
	jobRepo project.WorkshopJobRepository,
) *TransactionService {
	return &TransactionService{
		txRepo:         txRepo,
		walletRepo:     walletRepo,
		incomeCatRepo:  incomeCatRepo,
		expenseCatRepo: expenseCatRepo,
		projectRepo:    projectRepo,
		jobRepo:        jobRepo,
	}
}

// Create records a new transaction. The document code is allocated from the
// type's own family inside the insert transaction.
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) (*TransactionResponse, error) {
	tx := ledger.NewTransaction(ledger.TransactionType(req.Type), req.Date, req.Amount, req.WalletID)
	tx.WalletToID = req.WalletToID
	tx.IncomeCategoryID = req.IncomeCategoryID
	tx.ExpenseCategoryID = req.ExpenseCategoryID
	tx.ProjectID = req.ProjectID
	tx.WorkshopJobID = req.WorkshopJobID
	tx.IsCommonCost = req.IsCommonCost
	tx.Note = req.Note
	tx.IsSample = req.IsSample

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, tx); err != nil {
		return nil, err
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return ToTransactionResponse(tx), nil
}

// GetByID retrieves a live transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTransactionResponse(tx), nil
}

// List retrieves transactions matching the filter
func (s *TransactionService) List(ctx context.Context, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	domainFilter := ledger.TransactionFilter{
		Filter:   shared.DefaultFilter(),
		WalletID: filter.WalletID,
		From:     filter.From,
		To:       filter.To,
	}
	if filter.Type != "" {
		txType := ledger.TransactionType(filter.Type)
		domainFilter.Type = &txType
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	domainFilter.IncludeDeleted = filter.IncludeDeleted

	txs, total, err := s.txRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = *ToTransactionResponse(&txs[i])
	}
	return responses, total, nil
}

// Update merges the request into the stored row, re-runs the validation
// matrix on the merged state and re-checks reference liveness. Type and code
// are immutable.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.txRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		tx.Date = ledger.NormalizeDate(*req.Date)
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.WalletID != nil {
		tx.WalletID = *req.WalletID
	}
	if req.WalletToID != nil {
		tx.WalletToID = req.WalletToID
	}
	if req.IncomeCategoryID != nil {
		tx.IncomeCategoryID = req.IncomeCategoryID
	}
	if req.ExpenseCategoryID != nil {
		tx.ExpenseCategoryID = req.ExpenseCategoryID
	}
	if req.ProjectID != nil {
		tx.ProjectID = req.ProjectID
	}
	if req.WorkshopJobID != nil {
		tx.WorkshopJobID = req.WorkshopJobID
	}
	if req.IsCommonCost != nil {
		tx.IsCommonCost = *req.IsCommonCost
	}
	if req.Note != nil {
		tx.Note = *req.Note
	}
	if req.ClearProject {
		tx.ProjectID = nil
	}
	if req.ClearWorkshopJob {
		tx.WorkshopJobID = nil
	}
	if req.ClearNote {
		tx.Note = ""
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, tx); err != nil {
		return nil, err
	}
	if err := s.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}
	return ToTransactionResponse(tx), nil
}

// checkReferences verifies that every row the transaction points at is live.
// A reference to a soft-deleted or purged row is a validation failure, not a
// not-found: the caller named a row that cannot carry new postings.
func (s *TransactionService) checkReferences(ctx context.Context, tx *ledger.Transaction) error {
	if err := s.requireLiveWallet(ctx, tx.WalletID, "wallet_id"); err != nil {
		return err
	}
	if tx.WalletToID != nil {
		if err := s.requireLiveWallet(ctx, *tx.WalletToID, "wallet_to_id"); err != nil {
			return err
		}
	}
	if tx.IncomeCategoryID != nil {
		if _, err := s.incomeCatRepo.FindByID(ctx, *tx.IncomeCategoryID); err != nil {
			return translateReference(err, "income_category_id", "Income category is not live")
		}
	}
	if tx.ExpenseCategoryID != nil {
		if _, err := s.expenseCatRepo.FindByID(ctx, *tx.ExpenseCategoryID); err != nil {
			return translateReference(err, "expense_category_id", "Expense category is not live")
		}
	}
	if tx.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *tx.ProjectID); err != nil {
			return translateReference(err, "project_id", "Project is not live")
		}
	}
	if tx.WorkshopJobID != nil {
		if _, err := s.jobRepo.FindByID(ctx, *tx.WorkshopJobID); err != nil {
			return translateReference(err, "workshop_job_id", "Workshop job is not live")
		}
	}
	return nil
}

func (s *TransactionService) requireLiveWallet(ctx context.Context, id uuid.UUID, field string) error {
	if _, err := s.walletRepo.FindByID(ctx, id); err != nil {
		return translateReference(err, field, "Wallet is not live")
	}
	return nil
}

func translateReference(err error, field, message string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewValidationError(field, message)
	}
	return err
}
