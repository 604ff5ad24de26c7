package dto

import (
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormSummaryResponse holds one dashboard bucket.
type FormSummaryResponse struct {
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	Available decimal.Decimal `json:"available"`
}

// DashboardSummaryResponse is the dashboard payload: one bucket per
// payment form.
type DashboardSummaryResponse struct {
	Debit  FormSummaryResponse `json:"debit"`
	Credit FormSummaryResponse `json:"credit"`
	Other  FormSummaryResponse `json:"other"`
}

// ToDashboardSummaryResponse converts the domain summary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	toForm := func(f domain.FormSummary) FormSummaryResponse {
		return FormSummaryResponse{Income: f.Income, Expense: f.Expense, Available: f.Available}
	}
	return DashboardSummaryResponse{
		Debit:  toForm(s.Debit),
		Credit: toForm(s.Credit),
		Other:  toForm(s.Other),
	}
}
