package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker_app/internal/apperrors"
	"github.com/SscSPs/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, owner_id, amount, description, kind, payment_form, due_date, status, installment_index, installment_group_id, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction for DB storage
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		OwnerID:            d.OwnerID,
		Amount:             d.Amount,
		Description:        d.Description,
		Kind:               string(d.Kind),
		PaymentForm:        string(d.PaymentForm),
		DueDate:            d.DueDate,
		Status:             string(d.Status),
		InstallmentIndex:   d.InstallmentIndex,
		InstallmentGroupID: d.InstallmentGroupID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Transaction from DB to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		OwnerID:            m.OwnerID,
		Amount:             m.Amount,
		Description:        m.Description,
		Kind:               domain.TransactionKind(m.Kind),
		PaymentForm:        domain.PaymentForm(m.PaymentForm),
		DueDate:            m.DueDate,
		Status:             domain.TransactionStatus(m.Status),
		InstallmentIndex:   m.InstallmentIndex,
		InstallmentGroupID: m.InstallmentGroupID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// scanTransaction scans one row in transactionColumns order.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.Amount,
		&m.Description,
		&m.Kind,
		&m.PaymentForm,
		&m.DueDate,
		&m.Status,
		&m.InstallmentIndex,
		&m.InstallmentGroupID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindAllByOwner retrieves every transaction of the owner in insertion order.
func (r *PgxTransactionRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE owner_id = $1
		ORDER BY created_at, installment_index;
	`, transactionColumns)

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}

// FindOne retrieves a transaction scoped by both id and owner. A
// transaction belonging to another owner is indistinguishable from a
// missing one.
func (r *PgxTransactionRepository) FindOne(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`, transactionColumns)

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

// InsertMany persists an installment batch inside a single database
// transaction so a partial batch can never be observed.
func (r *PgxTransactionRepository) InsertMany(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := fmt.Sprintf(`
		INSERT INTO transactions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`, transactionColumns)

	batch := &pgx.Batch{}
	for _, d := range txns {
		m := toModelTransaction(d)
		batch.Queue(query,
			m.TransactionID,
			m.OwnerID,
			m.Amount,
			m.Description,
			m.Kind,
			m.PaymentForm,
			m.DueDate,
			m.Status,
			m.InstallmentIndex,
			m.InstallmentGroupID,
			m.CreatedAt,
			m.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				batchErr = fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, txns[i].TransactionID)
			} else {
				batchErr = fmt.Errorf("failed to insert transaction %s: %w", txns[i].TransactionID, err)
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close transaction insert batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return r.Commit(ctx, tx)
}

// UpdateStatusMany sets the status of every row matched by the filter
// and reports how many rows changed. Matching nothing is not an error.
func (r *PgxTransactionRepository) UpdateStatusMany(ctx context.Context, filter portsrepo.StatusUpdateFilter, newStatus domain.TransactionStatus, updatedAt time.Time) (int64, error) {
	statuses := make([]string, len(filter.StatusIn))
	for i, s := range filter.StatusIn {
		statuses[i] = string(s)
	}

	conditions := []string{"owner_id = $3", "status = ANY($4)", "due_date < $5"}
	args := []any{string(newStatus), updatedAt, filter.OwnerID, statuses, filter.DueBefore}
	if filter.PaymentForm != "" {
		args = append(args, string(filter.PaymentForm))
		conditions = append(conditions, fmt.Sprintf("payment_form = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE transactions
		SET status = $1, last_updated_at = $2
		WHERE %s;
	`, strings.Join(conditions, " AND "))

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk-update transaction status: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// UpdateOne applies the partial field set and returns the updated row.
func (r *PgxTransactionRepository) UpdateOne(ctx context.Context, ownerID, transactionID string, update portsrepo.TransactionUpdate, updatedAt time.Time) (*domain.Transaction, error) {
	setClauses := []string{"last_updated_at = $3"}
	args := []any{transactionID, ownerID, updatedAt}

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Amount != nil {
		addSet("amount", *update.Amount)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Kind != nil {
		addSet("kind", string(*update.Kind))
	}
	if update.PaymentForm != nil {
		addSet("payment_form", string(*update.PaymentForm))
	}
	if update.DueDate != nil {
		addSet("due_date", *update.DueDate)
	}
	if update.Status != nil {
		addSet("status", string(*update.Status))
	}

	query := fmt.Sprintf(`
		UPDATE transactions
		SET %s
		WHERE transaction_id = $1 AND owner_id = $2
		RETURNING %s;
	`, strings.Join(setClauses, ", "), transactionColumns)

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

// DeleteOne removes a transaction scoped by both id and owner.
func (r *PgxTransactionRepository) DeleteOne(ctx context.Context, ownerID, transactionID string) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
