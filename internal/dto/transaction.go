package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the wire for due
// dates. Time-of-day is not significant for transactions.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to create a new
// transaction. InstallmentCount defaults to 1 when omitted; Status
// defaults to PENDING.
type CreateTransactionRequest struct {
	Amount           decimal.Decimal          `json:"amount" binding:"required,decimalgt0"`
	Description      string                   `json:"description" binding:"required"`
	Kind             domain.TransactionKind   `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	PaymentForm      domain.PaymentForm       `json:"paymentForm" binding:"required,oneof=DEBIT CREDIT OTHER"`
	DueDate          string                   `json:"dueDate" binding:"required,datetime=2006-01-02"`
	InstallmentCount int                      `json:"installmentCount" binding:"omitempty,min=1,max=72"`
	Status           domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE"`
}

// UpdateTransactionRequest defines the partial field set of an update.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal          `json:"amount" binding:"omitempty,decimalgt0"`
	Description *string                   `json:"description" binding:"omitempty,min=1"`
	Kind        *domain.TransactionKind   `json:"kind" binding:"omitempty,oneof=INCOME EXPENSE"`
	PaymentForm *domain.PaymentForm       `json:"paymentForm" binding:"omitempty,oneof=DEBIT CREDIT OTHER"`
	DueDate     *string                   `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE"`
}

// ListTransactionsParams defines the query parameters of the
// server-side list endpoint backed by the account query engine.
type ListTransactionsParams struct {
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	Ascending bool   `form:"ascending,default=true"`
}

// TransactionResponse defines the data returned for a transaction.
// DueDate is display-adjusted: the storage representation carries a
// one-day shift that must be reversed before rendering.
type TransactionResponse struct {
	TransactionID      string                   `json:"transactionID"`
	Amount             decimal.Decimal          `json:"amount"`
	Description        string                   `json:"description"`
	Kind               domain.TransactionKind   `json:"kind"`
	PaymentForm        domain.PaymentForm       `json:"paymentForm"`
	DueDate            string                   `json:"dueDate"`
	Status             domain.TransactionStatus `json:"status"`
	InstallmentIndex   int                      `json:"installmentIndex"`
	InstallmentGroupID string                   `json:"installmentGroupID"`
	CreatedAt          time.Time                `json:"createdAt"`
	LastUpdatedAt      time.Time                `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO,
// applying the display-date adjustment.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      txn.TransactionID,
		Amount:             txn.Amount,
		Description:        txn.Description,
		Kind:               txn.Kind,
		PaymentForm:        txn.PaymentForm,
		DueDate:            accounting.ToDisplayDate(txn.DueDate).Format(DateLayout),
		Status:             txn.Status,
		InstallmentIndex:   txn.InstallmentIndex,
		InstallmentGroupID: txn.InstallmentGroupID,
		CreatedAt:          txn.CreatedAt,
		LastUpdatedAt:      txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
