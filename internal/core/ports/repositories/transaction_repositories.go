package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatusUpdateFilter selects the transactions targeted by a bulk status
// update. Every filter is owner-scoped; the zero PaymentForm means "any
// form".
type StatusUpdateFilter struct {
	OwnerID     string
	StatusIn    []domain.TransactionStatus
	DueBefore   time.Time
	PaymentForm domain.PaymentForm
}

// TransactionUpdate carries the partial field set of an update request.
// Pointers distinguish omitted fields from zero values. DueDate is
// expected to already be storage-adjusted by the caller.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Kind        *domain.TransactionKind
	PaymentForm *domain.PaymentForm
	DueDate     *time.Time
	Status      *domain.TransactionStatus
}

// TransactionRepository is the persistence contract consumed by the
// transaction service. All operations are scoped by owner: a
// transaction that exists under a different owner behaves exactly like
// one that does not exist (apperrors.ErrNotFound).
type TransactionRepository interface {
	// FindAllByOwner returns every transaction of the owner, in
	// insertion order. An owner with no transactions yields an empty
	// slice, not an error.
	FindAllByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error)

	// FindOne returns the transaction matching both id and owner.
	FindOne(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// InsertMany persists a creation batch atomically: either every
	// installment record is stored or none is.
	InsertMany(ctx context.Context, txns []domain.Transaction) error

	// UpdateStatusMany sets the status of every transaction matched by
	// the filter and returns how many rows were affected.
	UpdateStatusMany(ctx context.Context, filter StatusUpdateFilter, newStatus domain.TransactionStatus, updatedAt time.Time) (int64, error)

	// UpdateOne applies the partial field set and returns the updated
	// transaction.
	UpdateOne(ctx context.Context, ownerID, transactionID string, update TransactionUpdate, updatedAt time.Time) (*domain.Transaction, error)

	// DeleteOne removes the transaction matching both id and owner.
	// Deleting an already-deleted id fails with apperrors.ErrNotFound.
	DeleteOne(ctx context.Context, ownerID, transactionID string) error
}
