package services

import (
	"context"

	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/SscSPs/finance_tracker_app/internal/dto"
)

// TransactionSvcFacade defines the transaction operations exposed to
// the handlers. Every operation is scoped to the resolved owner; the
// owner id always comes from the authenticated session, never from
// client input.
type TransactionSvcFacade interface {
	// CreateTransaction reconciles prior outstanding credit entries,
	// expands the request into installment records and persists them.
	// It returns every created record in installment order.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) ([]domain.Transaction, error)

	// ListTransactions returns the owner's full transaction list,
	// unfiltered and unsorted.
	ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)

	// QueryTransactions runs the account query engine server-side:
	// description search plus a stable multi-key sort.
	QueryTransactions(ctx context.Context, ownerID, search string, sortBy accounting.SortKey, ascending bool) ([]domain.Transaction, error)

	// GetTransaction returns a single owned transaction.
	GetTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update; a present dueDate is
	// storage-adjusted before persisting.
	UpdateTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes an owned transaction. A second delete
	// of the same id fails with apperrors.ErrNotFound.
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error
}

// ReportingSvcFacade exposes the dashboard aggregation.
type ReportingSvcFacade interface {
	DashboardSummary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error)
}
