package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, customer_id, amount_cents, option, status, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.RentalID, p.CustomerID, p.AmountCents, p.Option, p.Status, p.Description, time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) List(ctx context.Context, customerID, rentalID int32, page, pageSize int32) ([]domain.Payment, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, rental_id, customer_id, amount_cents, option, status, description, created_on FROM payments WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if customerID != 0 {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if rentalID != 0 {
		query += fmt.Sprintf(" AND rental_id = $%d", argIdx)
		args = append(args, rentalID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.CustomerID, &p.AmountCents, &p.Option, &p.Status, &p.Description, &p.CreatedOn); err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}
	return payments, count, rows.Err()
}

func (r *paymentRepository) Summary(ctx context.Context, from, to time.Time) (*domain.PaymentSummary, error) {
	summary := &domain.PaymentSummary{}
	query := `SELECT
	            COALESCE(SUM(CASE WHEN status = 'COLLECTED' THEN amount_cents ELSE 0 END), 0),
	            COALESCE(SUM(CASE WHEN status = 'PENDING' THEN amount_cents ELSE 0 END), 0),
	            COALESCE(SUM(CASE WHEN status = 'REFUNDED' THEN amount_cents ELSE 0 END), 0),
	            COUNT(*)
	          FROM payments WHERE created_on >= $1 AND created_on < $2`
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&summary.TotalCollectedCents, &summary.TotalPendingCents, &summary.TotalRefundedCents, &summary.Count)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
