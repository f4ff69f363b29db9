package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rentals (customer_id, start_date, current_end_date, status, total_cost_cents, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	if err := tx.QueryRowContext(ctx, query, rt.CustomerID, rt.StartDate, rt.CurrentEndDate, rt.Status, rt.TotalCostCents, rt.Notes, now, now).Scan(&rt.ID); err != nil {
		return err
	}

	lineQuery := `INSERT INTO rental_lines (rental_id, item_id, quantity, unit_rate_cents, period_days, current_end_date)
	              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	for i := range rt.Lines {
		ln := &rt.Lines[i]
		ln.RentalID = rt.ID
		if err := tx.QueryRowContext(ctx, lineQuery, rt.ID, ln.ItemID, ln.Quantity, ln.UnitRateCents, ln.PeriodDays, ln.CurrentEndDate).Scan(&ln.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT r.id, r.customer_id, u.name, r.start_date, r.current_end_date, r.status, r.total_cost_cents, r.notes, r.created_on, r.updated_on
	          FROM rentals r JOIN users u ON u.id = r.customer_id WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CustomerID, &rt.CustomerName, &rt.StartDate, &rt.CurrentEndDate, &rt.Status, &rt.TotalCostCents, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}

	lines, err := r.linesByRental(ctx, id)
	if err != nil {
		return nil, err
	}
	rt.Lines = lines
	return rt, nil
}

func (r *rentalRepository) linesByRental(ctx context.Context, rentalID int32) ([]domain.RentalLine, error) {
	query := `SELECT l.id, l.rental_id, l.item_id, i.name, l.quantity, l.unit_rate_cents, l.period_days, l.current_end_date
	          FROM rental_lines l JOIN items i ON i.id = l.item_id WHERE l.rental_id = $1 ORDER BY l.id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.RentalLine
	for rows.Next() {
		var ln domain.RentalLine
		if err := rows.Scan(&ln.ID, &ln.RentalID, &ln.ItemID, &ln.ItemName, &ln.Quantity, &ln.UnitRateCents, &ln.PeriodDays, &ln.CurrentEndDate); err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, current_end_date=$2, total_cost_cents=$3, notes=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.CurrentEndDate, rt.TotalCostCents, rt.Notes, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) UpdateLineEndDates(ctx context.Context, rentalID int32, lineIDs []int32, endDate time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rental_lines SET current_end_date=$1 WHERE rental_id=$2 AND id = ANY($3)`,
		endDate, rentalID, pq.Array(lineIDs))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(lineIDs)) {
		return fmt.Errorf("expected to update %d lines of rental %d, updated %d", len(lineIDs), rentalID, affected)
	}

	// The rental-level end date tracks the latest committed line end.
	_, err = tx.ExecContext(ctx,
		`UPDATE rentals SET current_end_date = (SELECT MAX(current_end_date) FROM rental_lines WHERE rental_id=$1), updated_on=$2 WHERE id=$1`,
		rentalID, time.Now())
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT r.id, r.customer_id, u.name, r.start_date, r.current_end_date, r.status, r.total_cost_cents, r.notes, r.created_on, r.updated_on
	          FROM rentals r JOIN users u ON u.id = r.customer_id WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if customerID != 0 {
		query += fmt.Sprintf(" AND r.customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY r.created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.CustomerName, &rt.StartDate, &rt.CurrentEndDate, &rt.Status, &rt.TotalCostCents, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, rows.Err()
}

func (r *rentalRepository) ListEndingOn(ctx context.Context, endDate time.Time) ([]domain.Rental, error) {
	query := `SELECT r.id, r.customer_id, u.name, r.start_date, r.current_end_date, r.status, r.total_cost_cents, r.notes, r.created_on, r.updated_on
	          FROM rentals r JOIN users u ON u.id = r.customer_id
	          WHERE r.status IN ('ACTIVE', 'EXTENDED') AND r.current_end_date = $1`
	rows, err := r.db.QueryContext(ctx, query, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.CustomerName, &rt.StartDate, &rt.CurrentEndDate, &rt.Status, &rt.TotalCostCents, &rt.Notes, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
