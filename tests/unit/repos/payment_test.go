package repos

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository/postgres"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		payment := &domain.Payment{
			RentalID:    1,
			CustomerID:  5,
			AmountCents: 2800,
			Option:      domain.PaymentOptionPayNow,
			Status:      domain.PaymentStatusCollected,
			Description: "Extension of rental 1 to 2024-08-16",
		}

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(payment.RentalID, payment.CustomerID, payment.AmountCents, payment.Option, payment.Status, payment.Description, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, payment)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), payment.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_Summary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(date(2024, 8, 1), date(2024, 9, 1)).
			WillReturnRows(sqlmock.NewRows([]string{"collected", "pending", "refunded", "count"}).
				AddRow(5000, 1200, 0, 7))

		summary, err := repo.Summary(ctx, date(2024, 8, 1), date(2024, 9, 1))
		assert.NoError(t, err)
		assert.Equal(t, int64(5000), summary.TotalCollectedCents)
		assert.Equal(t, int64(1200), summary.TotalPendingCents)
		assert.Equal(t, int32(7), summary.Count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
