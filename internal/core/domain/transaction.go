package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is money coming in or going out.
type TransactionKind string

const (
	Income  TransactionKind = "INCOME"
	Expense TransactionKind = "EXPENSE"
)

// IsValid reports whether the kind is one of the closed set of values.
func (k TransactionKind) IsValid() bool {
	switch k {
	case Income, Expense:
		return true
	}
	return false
}

// PaymentForm identifies the settlement instrument of a transaction.
type PaymentForm string

const (
	Debit  PaymentForm = "DEBIT"
	Credit PaymentForm = "CREDIT"
	Other  PaymentForm = "OTHER"
)

// IsValid reports whether the payment form is one of the closed set of values.
func (f PaymentForm) IsValid() bool {
	switch f {
	case Debit, Credit, Other:
		return true
	}
	return false
}

// TransactionStatus tracks the settlement state of a transaction.
// Reconciliation only ever moves PENDING/OVERDUE to PAID; PAID is never
// reverted except by an explicit user edit.
type TransactionStatus string

const (
	Pending TransactionStatus = "PENDING"
	Paid    TransactionStatus = "PAID"
	Overdue TransactionStatus = "OVERDUE"
)

// IsValid reports whether the status is one of the closed set of values.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case Pending, Paid, Overdue:
		return true
	}
	return false
}

// Transaction represents a single ledger entry owned by exactly one user.
// A user-submitted entry with N installments expands into N transactions
// sharing an InstallmentGroupID, each carrying its own share of the total
// amount and a due date one calendar month after the previous one.
type Transaction struct {
	TransactionID      string            `json:"transactionID"`      // Primary Key (UUID)
	OwnerID            string            `json:"ownerID"`            // FK -> users.user_id, immutable after creation
	Amount             decimal.Decimal   `json:"amount"`             // Positive; the installment share, not the original total
	Description        string            `json:"description"`        // Non-empty free text
	Kind               TransactionKind   `json:"kind"`               // INCOME or EXPENSE
	PaymentForm        PaymentForm       `json:"paymentForm"`        // DEBIT, CREDIT or OTHER
	DueDate            time.Time         `json:"dueDate"`            // Calendar date; time-of-day not significant
	Status             TransactionStatus `json:"status"`             // PENDING, PAID or OVERDUE
	InstallmentIndex   int               `json:"installmentIndex"`   // 1-based position within its group; 1 for non-split entries
	InstallmentGroupID string            `json:"installmentGroupID"` // Shared by all installments of one creation batch
	AuditFields
}
