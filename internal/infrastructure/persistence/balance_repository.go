package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBalanceReader computes wallet balances straight from the transaction
// and adjustment tables. Balances are never cached or stored: every call is
// a fresh aggregation over live rows.
type GormBalanceReader struct {
	db *gorm.DB
}

// NewGormBalanceReader creates a new GormBalanceReader
func NewGormBalanceReader(db *gorm.DB) *GormBalanceReader {
	return &GormBalanceReader{db: db}
}

type balanceRow struct {
	Kind     string
	Total    decimal.Decimal
	RowCount int64
}

// Summary aggregates the wallet's live movements into the reconciliation
// breakdown. Both tables are scanned by one statement so a concurrent write
// can never land between the transaction and adjustment sums.
func (r *GormBalanceReader) Summary(ctx context.Context, walletID uuid.UUID, from, to *time.Time) (ledger.BalanceSummary, ledger.SummaryStats, error) {
	summary := ledger.ZeroBalanceSummary()
	var stats ledger.SummaryStats

	args := map[string]any{"wallet": walletID}
	txWhere := "t.deleted_at IS NULL AND (t.wallet_id = @wallet OR t.wallet_to_id = @wallet)"
	adjWhere := "a.deleted_at IS NULL AND a.wallet_id = @wallet"
	if from != nil {
		args["from"] = ledger.NormalizeDate(*from)
		txWhere += " AND t.date >= @from"
		adjWhere += " AND a.date >= @from"
	}
	if to != nil {
		args["to"] = ledger.EndOfDay(*to)
		txWhere += " AND t.date <= @to"
		adjWhere += " AND a.date <= @to"
	}

	query := fmt.Sprintf(`
		SELECT kind, SUM(amount) AS total, COUNT(*) AS row_count FROM (
			SELECT CASE
				WHEN t.type = 'INCOME' THEN 'income'
				WHEN t.type = 'EXPENSE' THEN 'expense'
				WHEN t.wallet_id = @wallet THEN 'transfer_out'
				ELSE 'transfer_in'
			END AS kind, t.amount AS amount
			FROM transactions t
			WHERE %s
			UNION ALL
			SELECT 'adjustment' AS kind, a.amount AS amount
			FROM adjustments a
			WHERE %s
		) movements
		GROUP BY kind`, txWhere, adjWhere)

	var rows []balanceRow
	if err := r.db.WithContext(ctx).Raw(query, args).Scan(&rows).Error; err != nil {
		return summary, stats, err
	}

	for _, row := range rows {
		switch row.Kind {
		case "income":
			summary.IncomeTotal = row.Total
			stats.TransactionRows += row.RowCount
		case "expense":
			summary.ExpenseTotal = row.Total
			stats.TransactionRows += row.RowCount
		case "transfer_in":
			summary.TransferInTotal = row.Total
			stats.TransactionRows += row.RowCount
		case "transfer_out":
			summary.TransferOutTotal = row.Total
			stats.TransactionRows += row.RowCount
		case "adjustment":
			summary.AdjustmentTotal = row.Total
			stats.AdjustmentRows += row.RowCount
		}
	}
	summary.ComputeNet()

	return summary, stats, nil
}

// Ensure GormBalanceReader implements BalanceReader
var _ ledger.BalanceReader = (*GormBalanceReader)(nil)
