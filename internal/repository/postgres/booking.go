package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) ListOverlapping(ctx context.Context, itemID int32, from, to time.Time, excludeRentalID int32) ([]domain.Booking, error) {
	// Inclusive windows overlap when each starts on or before the other ends.
	query := `SELECT b.id, b.item_id, b.rental_id, b.customer_id, u.name, b.quantity, b.start_date, b.end_date, b.status
	          FROM bookings b JOIN users u ON u.id = b.customer_id
	          WHERE b.item_id = $1
	            AND b.rental_id <> $2
	            AND b.status IN ('RESERVED', 'ACTIVE')
	            AND b.start_date <= $3
	            AND b.end_date >= $4
	          ORDER BY b.start_date`
	rows, err := r.db.QueryContext(ctx, query, itemID, excludeRentalID, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.ItemID, &b.RentalID, &b.CustomerID, &b.CustomerName, &b.Quantity, &b.StartDate, &b.EndDate, &b.Status); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
