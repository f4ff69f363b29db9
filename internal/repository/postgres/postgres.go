package postgres

import (
	"database/sql"

	"rentline-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.BookingRepository
	repository.ItemRepository
	repository.PaymentRepository
	repository.UserRepository
	repository.AuditRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		RentalRepository:  NewRentalRepository(db),
		BookingRepository: NewBookingRepository(db),
		ItemRepository:    NewItemRepository(db),
		PaymentRepository: NewPaymentRepository(db),
		UserRepository:    NewUserRepository(db),
		AuditRepository:   NewAuditRepository(db),
	}
}
