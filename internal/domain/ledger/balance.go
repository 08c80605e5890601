package ledger

import (
	"github.com/shopspring/decimal"
)

// BalanceSummary is the reconciliation breakdown of a wallet over a range.
// All totals are sums over live (non-soft-deleted) rows only.
type BalanceSummary struct {
	IncomeTotal      decimal.Decimal `json:"income_total"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	TransferInTotal  decimal.Decimal `json:"transfer_in_total"`
	TransferOutTotal decimal.Decimal `json:"transfer_out_total"`
	AdjustmentTotal  decimal.Decimal `json:"adjustment_total"`
	Net              decimal.Decimal `json:"net"`
}

// ComputeNet derives the net from the component totals:
// income - expense + transferIn - transferOut + adjustment
func (b *BalanceSummary) ComputeNet() {
	b.Net = b.IncomeTotal.
		Sub(b.ExpenseTotal).
		Add(b.TransferInTotal).
		Sub(b.TransferOutTotal).
		Add(b.AdjustmentTotal)
}

// ZeroBalanceSummary returns a summary with every total at zero
func ZeroBalanceSummary() BalanceSummary {
	return BalanceSummary{
		IncomeTotal:      decimal.Zero,
		ExpenseTotal:     decimal.Zero,
		TransferInTotal:  decimal.Zero,
		TransferOutTotal: decimal.Zero,
		AdjustmentTotal:  decimal.Zero,
		Net:              decimal.Zero,
	}
}

// WarningKind classifies reconciliation warnings
type WarningKind string

const (
	// WarningDeletedWalletReference flags live rows pointing at a soft-deleted wallet
	WarningDeletedWalletReference WarningKind = "DELETED_WALLET_REFERENCE"
	// WarningCountMismatch flags a difference between rows assigned and rows summed
	WarningCountMismatch WarningKind = "COUNT_MISMATCH"
)

// Warning is a structured data-quality finding. Warnings are report data, not
// errors: they never abort a report request.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Entity  string      `json:"entity"`
	Count   int64       `json:"count"`
	Message string      `json:"message"`
}
