package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository/postgres"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := &domain.Rental{
			CustomerID:     5,
			StartDate:      date(2024, 8, 1),
			CurrentEndDate: date(2024, 8, 9),
			Status:         domain.RentalStatusActive,
			TotalCostCents: 2700,
			Lines: []domain.RentalLine{
				{ItemID: 100, Quantity: 1, UnitRateCents: 300, PeriodDays: 1, CurrentEndDate: date(2024, 8, 9)},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.CustomerID, rental.StartDate, rental.CurrentEndDate, rental.Status, rental.TotalCostCents, rental.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("INSERT INTO rental_lines").
			WithArgs(int32(1), int32(100), int32(1), int32(300), 1, date(2024, 8, 9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectCommit()

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rental.ID)
		assert.Equal(t, int32(11), rental.Lines[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRows := sqlmock.NewRows([]string{"id", "customer_id", "name", "start_date", "current_end_date", "status", "total_cost_cents", "notes", "created_on", "updated_on"}).
			AddRow(1, 5, "Alice", date(2024, 8, 1), date(2024, 8, 9), "ACTIVE", 2700, "", time.Now(), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM rentals r JOIN users u").
			WithArgs(int32(1)).
			WillReturnRows(rentalRows)

		lineRows := sqlmock.NewRows([]string{"id", "rental_id", "item_id", "name", "quantity", "unit_rate_cents", "period_days", "current_end_date"}).
			AddRow(11, 1, 100, "Excavator", 1, 300, 1, date(2024, 8, 9))
		mock.ExpectQuery("SELECT (.+) FROM rental_lines l JOIN items i").
			WithArgs(int32(1)).
			WillReturnRows(lineRows)

		rental, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Alice", rental.CustomerName)
		assert.Len(t, rental.Lines, 1)
		assert.Equal(t, "Excavator", rental.Lines[0].ItemName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_UpdateLineEndDates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rental_lines SET current_end_date").
			WithArgs(date(2024, 8, 16), int32(1), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("UPDATE rentals SET current_end_date").
			WithArgs(int32(1), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateLineEndDates(ctx, 1, []int32{11, 12}, date(2024, 8, 16))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RowCountMismatch", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE rental_lines SET current_end_date").
			WithArgs(date(2024, 8, 16), int32(1), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		err := repo.UpdateLineEndDates(ctx, 1, []int32{11, 12}, date(2024, 8, 16))
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("FilterByStatus", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs("ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM rentals r JOIN users u").
			WithArgs("ACTIVE", int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "name", "start_date", "current_end_date", "status", "total_cost_cents", "notes", "created_on", "updated_on"}).
				AddRow(1, 5, "Alice", date(2024, 8, 1), date(2024, 8, 9), "ACTIVE", 2700, "", time.Now(), time.Now()))

		rentals, total, err := repo.List(ctx, 0, "ACTIVE", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, rentals, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
