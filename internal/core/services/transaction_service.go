package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/finance_tracker_app/internal/apperrors"
	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker_app/internal/dto"
	"github.com/SscSPs/finance_tracker_app/internal/middleware"
)

// transactionService provides the core transaction operations:
// reconciliation, installment expansion and owner-scoped CRUD.
type transactionService struct {
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

// Ensure transactionService implements the facade.
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// reconcileOnCreate settles the previous statement cycle: every
// outstanding (pending or overdue) credit-form transaction of the owner
// due strictly before the new first due date is marked paid. A new
// credit entry implies the prior cycle's charges were billed and paid;
// debit and other forms carry no such implication and are left for
// explicit user action. Runs once per create, before installment
// expansion, against the adjusted first due date only.
func (s *transactionService) reconcileOnCreate(ctx context.Context, ownerID string, firstDueDate time.Time, form domain.PaymentForm, now time.Time) (int64, error) {
	if form != domain.Credit {
		return 0, nil
	}

	filter := portsrepo.StatusUpdateFilter{
		OwnerID:     ownerID,
		StatusIn:    []domain.TransactionStatus{domain.Pending, domain.Overdue},
		DueBefore:   firstDueDate,
		PaymentForm: domain.Credit,
	}
	affected, err := s.txnRepo.UpdateStatusMany(ctx, filter, domain.Paid, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile outstanding credit transactions: %w", err)
	}
	return affected, nil
}

// CreateTransaction implements portssvc.TransactionSvcFacade.
// Reconciliation and insertion are attempted as one logical operation:
// any reconciliation failure aborts the create before anything is
// inserted, and the installment batch itself is inserted atomically.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner identity is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !req.Kind.IsValid() || !req.PaymentForm.IsValid() {
		return nil, fmt.Errorf("%w: invalid kind or payment form", apperrors.ErrValidation)
	}

	formDate, err := time.Parse(dto.DateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
	}

	status := req.Status
	if status == "" {
		status = domain.Pending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, req.Status)
	}

	count := req.InstallmentCount
	if count == 0 {
		count = 1
	}

	// The form sends a bare calendar date; shift it once here and only
	// reverse it at the presentation boundary.
	firstDueDate := accounting.ToStorageDate(formDate.UTC())
	now := time.Now().UTC()

	affected, err := s.reconcileOnCreate(ctx, ownerID, firstDueDate, req.PaymentForm, now)
	if err != nil {
		logger.Error("Reconciliation failed, aborting create", slog.String("error", err.Error()))
		return nil, err
	}
	if affected > 0 {
		logger.Info("Reconciled outstanding credit transactions", slog.Int64("affected", affected))
	}

	shares, err := accounting.SplitAmount(req.Amount, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	anchor := accounting.AnchorDay(firstDueDate)
	groupID := uuid.NewString()
	txns := make([]domain.Transaction, count)
	for i := 0; i < count; i++ {
		txns[i] = domain.Transaction{
			TransactionID:      uuid.NewString(),
			OwnerID:            ownerID,
			Amount:             shares[i],
			Description:        req.Description,
			Kind:               req.Kind,
			PaymentForm:        req.PaymentForm,
			DueDate:            accounting.InstallmentDueDate(firstDueDate, i, anchor),
			Status:             status,
			InstallmentIndex:   i + 1,
			InstallmentGroupID: groupID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	if err := s.txnRepo.InsertMany(ctx, txns); err != nil {
		logger.Error("Failed to insert installment batch", slog.String("error", err.Error()), slog.Int("count", count))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("installment_group_id", groupID),
		slog.Int("installments", count),
		slog.String("payment_form", string(req.PaymentForm)))
	return txns, nil
}

// ListTransactions implements portssvc.TransactionSvcFacade.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner identity is required", apperrors.ErrValidation)
	}
	txns, err := s.txnRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// QueryTransactions implements portssvc.TransactionSvcFacade.
func (s *transactionService) QueryTransactions(ctx context.Context, ownerID, search string, sortBy accounting.SortKey, ascending bool) ([]domain.Transaction, error) {
	txns, err := s.ListTransactions(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return accounting.Query(txns, search, sortBy, ascending), nil
}

// GetTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) GetTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindOne(ctx, ownerID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// UpdateTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	update := portsrepo.TransactionUpdate{
		Description: req.Description,
		Kind:        req.Kind,
		PaymentForm: req.PaymentForm,
		Status:      req.Status,
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		update.Amount = req.Amount
	}

	if req.DueDate != nil {
		formDate, err := time.Parse(dto.DateLayout, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, *req.DueDate)
		}
		storageDate := accounting.ToStorageDate(formDate.UTC())
		update.DueDate = &storageDate
	}

	txn, err := s.txnRepo.UpdateOne(ctx, ownerID, transactionID, update, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.txnRepo.DeleteOne(ctx, ownerID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
