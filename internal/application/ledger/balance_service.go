package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// BalanceService derives wallet balances and produces reconciliation reports.
// A balance is always computed from the live rows at read time; nothing here
// ever writes.
type BalanceService struct {
	reader     ledger.BalanceReader
	walletRepo ledger.WalletRepository
	txRepo     ledger.TransactionRepository
	adjRepo    ledger.AdjustmentRepository
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(
	reader ledger.BalanceReader,
	walletRepo ledger.WalletRepository,
	txRepo ledger.TransactionRepository,
	adjRepo ledger.AdjustmentRepository,
) *BalanceService {
	return &BalanceService{
		reader:     reader,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		adjRepo:    adjRepo,
	}
}

// GetBalance computes the wallet's balance breakdown over an optional range.
// The wallet must exist but may be soft-deleted: a deleted wallet still has a
// readable history.
func (s *BalanceService) GetBalance(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (*BalanceResponse, error) {
	if _, err := s.walletRepo.FindByIDUnscoped(ctx, walletID); err != nil {
		return nil, err
	}

	summary, _, err := s.reader.Summary(ctx, walletID, from, to)
	if err != nil {
		return nil, err
	}
	return toBalanceResponse(walletID, from, to, summary), nil
}

// Reconcile computes the balance and cross-checks it against independent row
// counts. Findings come back as structured warnings; a warning never turns
// into an error, so a messy wallet still gets its report.
func (s *BalanceService) Reconcile(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (*ReconciliationResponse, error) {
	wallet, err := s.walletRepo.FindByIDUnscoped(ctx, walletID)
	if err != nil {
		return nil, err
	}

	summary, stats, err := s.reader.Summary(ctx, walletID, from, to)
	if err != nil {
		return nil, err
	}

	warnings := make([]WarningResponse, 0)

	txCount, err := s.txRepo.CountLiveAffectingWallet(ctx, walletID, from, to)
	if err != nil {
		return nil, err
	}
	if txCount != stats.TransactionRows {
		warnings = append(warnings, WarningResponse{
			Kind:   string(ledger.WarningCountMismatch),
			Entity: "transaction",
			Count:  txCount - stats.TransactionRows,
			Message: fmt.Sprintf("Counted %d live transactions but summed %d rows",
				txCount, stats.TransactionRows),
		})
	}

	adjCount, err := s.adjRepo.CountLiveByWallet(ctx, walletID, from, to)
	if err != nil {
		return nil, err
	}
	if adjCount != stats.AdjustmentRows {
		warnings = append(warnings, WarningResponse{
			Kind:   string(ledger.WarningCountMismatch),
			Entity: "adjustment",
			Count:  adjCount - stats.AdjustmentRows,
			Message: fmt.Sprintf("Counted %d live adjustments but summed %d rows",
				adjCount, stats.AdjustmentRows),
		})
	}

	if wallet.IsDeleted() {
		referencing := txCount + adjCount
		if referencing > 0 {
			warnings = append(warnings, WarningResponse{
				Kind:   string(ledger.WarningDeletedWalletReference),
				Entity: "wallet",
				Count:  referencing,
				Message: fmt.Sprintf("Wallet %s is soft-deleted but %d live rows still reference it",
					wallet.Code, referencing),
			})
		}
	}

	return &ReconciliationResponse{
		Balance:  *toBalanceResponse(walletID, from, to, summary),
		Warnings: warnings,
	}, nil
}

func toBalanceResponse(walletID uuid.UUID, from, to *time.Time, summary ledger.BalanceSummary) *BalanceResponse {
	return &BalanceResponse{
		WalletID:         walletID,
		From:             from,
		To:               to,
		IncomeTotal:      summary.IncomeTotal,
		ExpenseTotal:     summary.ExpenseTotal,
		TransferInTotal:  summary.TransferInTotal,
		TransferOutTotal: summary.TransferOutTotal,
		AdjustmentTotal:  summary.AdjustmentTotal,
		Net:              summary.Net,
	}
}
