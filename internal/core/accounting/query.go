package accounting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
)

// SortKey selects the ordering applied by the account query engine.
type SortKey string

const (
	SortNone        SortKey = ""            // preserve input order
	SortDueDateNear SortKey = "dueDateNear" // soonest due date first
	SortDueDateFar  SortKey = "dueDateFar"  // farthest due date first
	SortPayable     SortKey = "payable"     // expenses before incomes
	SortReceivable  SortKey = "receivable"  // incomes before expenses
)

// ParseSortKey validates a client-supplied sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNone, SortDueDateNear, SortDueDateFar, SortPayable, SortReceivable:
		return SortKey(s), nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", s)
}

// NextDirection implements the toggle contract of the list page:
// re-selecting the key already active flips the direction instead of
// resetting it; selecting a different key starts ascending.
func NextDirection(current, selected SortKey, ascending bool) (SortKey, bool) {
	if selected == current {
		return current, !ascending
	}
	return selected, true
}

// Query filters transactions by a case-insensitive description match and
// orders them by the given sort key. An empty search matches everything.
// The sort is stable: entries that compare equal keep their relative
// input order. The input slice is not modified.
func Query(txns []domain.Transaction, search string, key SortKey, ascending bool) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	needle := strings.ToLower(search)
	for _, txn := range txns {
		if needle == "" || strings.Contains(strings.ToLower(txn.Description), needle) {
			out = append(out, txn)
		}
	}

	less := comparator(key, ascending)
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func comparator(key SortKey, ascending bool) func(a, b domain.Transaction) bool {
	switch key {
	case SortDueDateNear:
		if ascending {
			return func(a, b domain.Transaction) bool { return a.DueDate.Before(b.DueDate) }
		}
		return func(a, b domain.Transaction) bool { return b.DueDate.Before(a.DueDate) }
	case SortDueDateFar:
		// Mirror of dueDateNear: its ascending direction is farthest first.
		if ascending {
			return func(a, b domain.Transaction) bool { return b.DueDate.Before(a.DueDate) }
		}
		return func(a, b domain.Transaction) bool { return a.DueDate.Before(b.DueDate) }
	case SortPayable:
		if ascending {
			return func(a, b domain.Transaction) bool { return a.Kind == domain.Expense && b.Kind == domain.Income }
		}
		return func(a, b domain.Transaction) bool { return a.Kind == domain.Income && b.Kind == domain.Expense }
	case SortReceivable:
		if ascending {
			return func(a, b domain.Transaction) bool { return a.Kind == domain.Income && b.Kind == domain.Expense }
		}
		return func(a, b domain.Transaction) bool { return a.Kind == domain.Expense && b.Kind == domain.Income }
	}
	return nil
}
