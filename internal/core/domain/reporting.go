package domain

import (
	"github.com/shopspring/decimal"
)

// FormSummary holds the dashboard totals for one payment-form bucket.
type FormSummary struct {
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Available decimal.Decimal `json:"available"` // Income minus Expense
}

// DashboardSummary is the full dashboard aggregation: one bucket per
// payment form. The credit bucket is deliberately asymmetric — its
// income is the most recent paid credit income, a rolling
// available-limit snapshot, not a period sum.
type DashboardSummary struct {
	Debit  FormSummary `json:"debit"`
	Credit FormSummary `json:"credit"`
	Other  FormSummary `json:"other"`
}
