package repository

import (
	"context"
	"time"

	"rentline-backend/internal/domain"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// UpdateLineEndDates moves the committed end date of the given lines and
	// the rental-level end date to endDate.
	UpdateLineEndDates(ctx context.Context, rentalID int32, lineIDs []int32, endDate time.Time) error
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListEndingOn(ctx context.Context, endDate time.Time) ([]domain.Rental, error)
}

type BookingRepository interface {
	// ListOverlapping returns reservations of itemID whose inclusive date
	// window intersects [from, to], excluding those belonging to
	// excludeRentalID.
	ListOverlapping(ctx context.Context, itemID int32, from, to time.Time, excludeRentalID int32) ([]domain.Booking, error)
}

type ItemRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Item, int32, error)
	CreateMovement(ctx context.Context, movement *domain.StockMovement) error
	ListMovements(ctx context.Context, itemID int32, page, pageSize int32) ([]domain.StockMovement, int32, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context, customerID, rentalID int32, page, pageSize int32) ([]domain.Payment, int32, error)
	Summary(ctx context.Context, from, to time.Time) (*domain.PaymentSummary, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, page, pageSize int32) ([]domain.AuditEntry, int32, error)
}
