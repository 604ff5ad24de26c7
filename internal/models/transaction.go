package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction row. Each row is one
// installment; a creation batch of N installments shares an
// installment_group_id.
type Transaction struct {
	TransactionID      string          `json:"transactionID" db:"transaction_id"`
	OwnerID            string          `json:"ownerID" db:"owner_id"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	Description        string          `json:"description" db:"description"`
	Kind               string          `json:"kind" db:"kind"`
	PaymentForm        string          `json:"paymentForm" db:"payment_form"`
	DueDate            time.Time       `json:"dueDate" db:"due_date"`
	Status             string          `json:"status" db:"status"`
	InstallmentIndex   int             `json:"installmentIndex" db:"installment_index"`
	InstallmentGroupID string          `json:"installmentGroupID" db:"installment_group_id"`
	AuditFields
}
