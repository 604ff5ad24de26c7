package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id, description string, kind domain.TransactionKind, due time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Description:   description,
		Kind:          kind,
		PaymentForm:   domain.Debit,
		Amount:        decimal.NewFromInt(10),
		DueDate:       due,
		Status:        domain.Pending,
	}
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}

func TestQuery_FilterIsCaseInsensitive(t *testing.T) {
	due := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.Transaction{
		txn("a", "Aluguel", domain.Expense, due),
		txn("b", "Salário", domain.Income, due),
	}

	got := accounting.Query(in, "alu", accounting.SortNone, true)
	assert.Equal(t, []string{"a"}, ids(got))

	got = accounting.Query(in, "ALUGUEL", accounting.SortNone, true)
	assert.Equal(t, []string{"a"}, ids(got))

	got = accounting.Query(in, "", accounting.SortNone, true)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestQuery_DueDateNearTogglesDirection(t *testing.T) {
	in := []domain.Transaction{
		txn("late", "rent", domain.Expense, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		txn("early", "rent", domain.Expense, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		txn("mid", "rent", domain.Expense, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := accounting.Query(in, "", accounting.SortDueDateNear, true)
	assert.Equal(t, []string{"early", "mid", "late"}, ids(got))

	got = accounting.Query(in, "", accounting.SortDueDateNear, false)
	assert.Equal(t, []string{"late", "mid", "early"}, ids(got))
}

func TestQuery_DueDateFarMirrorsNear(t *testing.T) {
	in := []domain.Transaction{
		txn("early", "rent", domain.Expense, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		txn("late", "rent", domain.Expense, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := accounting.Query(in, "", accounting.SortDueDateFar, true)
	assert.Equal(t, []string{"late", "early"}, ids(got))

	got = accounting.Query(in, "", accounting.SortDueDateFar, false)
	assert.Equal(t, []string{"early", "late"}, ids(got))
}

func TestQuery_SortIsStableForEqualKeys(t *testing.T) {
	due := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	in := []domain.Transaction{
		txn("first", "groceries", domain.Expense, due),
		txn("second", "fuel", domain.Expense, due),
		txn("third", "pharmacy", domain.Expense, due),
	}

	got := accounting.Query(in, "", accounting.SortDueDateNear, true)
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestQuery_PayablePutsExpensesFirst(t *testing.T) {
	due := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	in := []domain.Transaction{
		txn("income1", "salary", domain.Income, due),
		txn("expense1", "rent", domain.Expense, due),
		txn("income2", "bonus", domain.Income, due),
		txn("expense2", "water", domain.Expense, due),
	}

	got := accounting.Query(in, "", accounting.SortPayable, true)
	assert.Equal(t, []string{"expense1", "expense2", "income1", "income2"}, ids(got))

	// Direction flip puts incomes first, still stable within each kind.
	got = accounting.Query(in, "", accounting.SortPayable, false)
	assert.Equal(t, []string{"income1", "income2", "expense1", "expense2"}, ids(got))
}

func TestQuery_ReceivableMirrorsPayable(t *testing.T) {
	due := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	in := []domain.Transaction{
		txn("expense1", "rent", domain.Expense, due),
		txn("income1", "salary", domain.Income, due),
	}

	got := accounting.Query(in, "", accounting.SortReceivable, true)
	assert.Equal(t, []string{"income1", "expense1"}, ids(got))

	got = accounting.Query(in, "", accounting.SortReceivable, false)
	assert.Equal(t, []string{"expense1", "income1"}, ids(got))
}

func TestQuery_NoKeyPreservesInputOrder(t *testing.T) {
	in := []domain.Transaction{
		txn("z", "c", domain.Expense, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		txn("a", "b", domain.Income, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}
	got := accounting.Query(in, "", accounting.SortNone, true)
	assert.Equal(t, []string{"z", "a"}, ids(got))
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	in := []domain.Transaction{
		txn("z", "rent", domain.Expense, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		txn("a", "rent", domain.Expense, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}
	_ = accounting.Query(in, "", accounting.SortDueDateNear, true)
	assert.Equal(t, []string{"z", "a"}, ids(in))
}

func TestNextDirection(t *testing.T) {
	// Selecting a new key starts ascending.
	key, asc := accounting.NextDirection(accounting.SortNone, accounting.SortDueDateNear, true)
	assert.Equal(t, accounting.SortDueDateNear, key)
	assert.True(t, asc)

	// Re-selecting the active key toggles the direction.
	key, asc = accounting.NextDirection(accounting.SortDueDateNear, accounting.SortDueDateNear, true)
	assert.Equal(t, accounting.SortDueDateNear, key)
	assert.False(t, asc)

	key, asc = accounting.NextDirection(accounting.SortDueDateNear, accounting.SortDueDateNear, false)
	assert.True(t, asc)

	// Switching keys resets to ascending even if the previous was descending.
	key, asc = accounting.NextDirection(accounting.SortDueDateNear, accounting.SortPayable, false)
	assert.Equal(t, accounting.SortPayable, key)
	assert.True(t, asc)
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"", "dueDateNear", "dueDateFar", "payable", "receivable"} {
		key, err := accounting.ParseSortKey(valid)
		require.NoError(t, err)
		assert.Equal(t, accounting.SortKey(valid), key)
	}

	_, err := accounting.ParseSortKey("bogus")
	assert.Error(t, err)
}
