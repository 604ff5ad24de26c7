package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(kind domain.TransactionKind, form domain.PaymentForm, status domain.TransactionStatus, amount int64, due time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn",
		Kind:          kind,
		PaymentForm:   form,
		Status:        status,
		Amount:        decimal.NewFromInt(amount),
		DueDate:       due,
	}
}

func TestSummarize_DebitBucket(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Income, domain.Debit, domain.Paid, 500, due),
		entry(domain.Expense, domain.Debit, domain.Pending, 200, due),
	})

	assert.True(t, s.Debit.Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.Debit.Expense.Equal(decimal.NewFromInt(200)))
	assert.True(t, s.Debit.Available.Equal(decimal.NewFromInt(300)))
}

func TestSummarize_UnpaidIncomeDoesNotCount(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Income, domain.Debit, domain.Pending, 500, due),
		entry(domain.Income, domain.Other, domain.Overdue, 300, due),
	})

	assert.True(t, s.Debit.Income.IsZero())
	assert.True(t, s.Other.Income.IsZero())
}

func TestSummarize_DebitExpenseCountsAnyStatus(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Expense, domain.Debit, domain.Paid, 100, due),
		entry(domain.Expense, domain.Debit, domain.Pending, 50, due),
		entry(domain.Expense, domain.Debit, domain.Overdue, 25, due),
	})

	assert.True(t, s.Debit.Expense.Equal(decimal.NewFromInt(175)))
}

func TestSummarize_OtherBucketMirrorsDebitRules(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Income, domain.Other, domain.Paid, 80, due),
		entry(domain.Expense, domain.Other, domain.Paid, 30, due),
	})

	assert.True(t, s.Other.Income.Equal(decimal.NewFromInt(80)))
	assert.True(t, s.Other.Expense.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.Other.Available.Equal(decimal.NewFromInt(50)))
}

func TestSummarize_CreditIncomeIsMostRecentPaidOnly(t *testing.T) {
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Income, domain.Credit, domain.Paid, 1000, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		entry(domain.Income, domain.Credit, domain.Paid, 1500, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		entry(domain.Income, domain.Credit, domain.Paid, 1200, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)),
		// Pending credit income must not become the snapshot.
		entry(domain.Income, domain.Credit, domain.Pending, 9999, time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)),
	})

	assert.True(t, s.Credit.Income.Equal(decimal.NewFromInt(1500)), "expected the latest paid credit income, got %s", s.Credit.Income)
}

func TestSummarize_CreditIncomeZeroWhenNonePaid(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Income, domain.Credit, domain.Pending, 500, due),
	})
	assert.True(t, s.Credit.Income.IsZero())
}

func TestSummarize_CreditExpenseSumsOutstandingAnyForm(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Expense, domain.Credit, domain.Pending, 100, due),
		entry(domain.Expense, domain.Debit, domain.Overdue, 40, due),
		entry(domain.Expense, domain.Other, domain.Paid, 999, due), // settled, excluded
	})

	// Outstanding expenses count regardless of form; the debit one also
	// appears in the debit bucket.
	assert.True(t, s.Credit.Expense.Equal(decimal.NewFromInt(140)))
	assert.True(t, s.Debit.Expense.Equal(decimal.NewFromInt(40)))
}

func TestSummarize_AvailableCanGoNegative(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := accounting.Summarize([]domain.Transaction{
		entry(domain.Expense, domain.Credit, domain.Overdue, 700, due),
	})

	assert.True(t, s.Credit.Available.Equal(decimal.NewFromInt(-700)))
}

func TestSummarize_EmptyInputYieldsZeroes(t *testing.T) {
	s := accounting.Summarize(nil)
	assert.True(t, s.Debit.Income.IsZero())
	assert.True(t, s.Debit.Expense.IsZero())
	assert.True(t, s.Debit.Available.IsZero())
	assert.True(t, s.Credit.Available.IsZero())
	assert.True(t, s.Other.Available.IsZero())
}
