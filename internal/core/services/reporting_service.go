package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_tracker_app/internal/apperrors"
	"github.com/SscSPs/finance_tracker_app/internal/core/accounting"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker_app/internal/middleware"
)

// reportingService implements the dashboard aggregation on top of the
// transaction repository.
type reportingService struct {
	txnRepo portsrepo.TransactionRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionRepository) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardSummary buckets the owner's transactions by payment form and
// computes income, expense and available per bucket.
func (s *reportingService) DashboardSummary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner identity is required", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to load transactions for dashboard", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	summary := accounting.Summarize(txns)
	logger.Info("Dashboard summary generated", slog.Int("transaction_count", len(txns)))
	return &summary, nil
}
