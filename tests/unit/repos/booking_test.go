package repos

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository/postgres"
)

func TestBookingRepository_ListOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "item_id", "rental_id", "customer_id", "name", "quantity", "start_date", "end_date", "status"}).
			AddRow(77, 100, 9, 6, "Beta Builders", 2, date(2024, 8, 12), date(2024, 8, 20), "RESERVED")

		mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN users u").
			WithArgs(int32(100), int32(1), date(2024, 8, 16), date(2024, 8, 10)).
			WillReturnRows(rows)

		bookings, err := repo.ListOverlapping(ctx, 100, date(2024, 8, 10), date(2024, 8, 16), 1)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, domain.BookingStatusReserved, bookings[0].Status)
		assert.Equal(t, "Beta Builders", bookings[0].CustomerName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoRows", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN users u").
			WithArgs(int32(100), int32(1), date(2024, 8, 16), date(2024, 8, 10)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "rental_id", "customer_id", "name", "quantity", "start_date", "end_date", "status"}))

		bookings, err := repo.ListOverlapping(ctx, 100, date(2024, 8, 10), date(2024, 8, 16), 1)
		assert.NoError(t, err)
		assert.Empty(t, bookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
