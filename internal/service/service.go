package service

import (
	"context"
	"time"

	"rentline-backend/internal/domain"
)

type ExtensionService interface {
	// CheckAvailability runs the availability check for extending a rental
	// and opens a conflict-resolution dialog session. When conflicts exist
	// the result carries them along with the proposed solutions.
	CheckAvailability(ctx context.Context, rentalID int32, req domain.ExtensionRequest) (*domain.AvailabilityResult, error)
	// QuoteExtension prices an extension without touching availability.
	QuoteExtension(ctx context.Context, rentalID int32, req domain.ExtensionRequest) (*domain.ExtensionQuote, error)
	// SelectSolution records the user's pick inside a dialog session.
	SelectSolution(ctx context.Context, sessionID string, index int) (*domain.ResolutionSolution, error)
	// CancelDialog dismisses a dialog session, discarding computed solutions.
	CancelDialog(ctx context.Context, sessionID string) error
	// SubmitExtension applies a finalized extension payload to the rental.
	SubmitExtension(ctx context.Context, actor domain.Capability, rentalID int32, sub domain.ExtensionSubmission) (*domain.Rental, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, actor domain.Capability, customerID int32, startDate, endDate string, items []domain.RentalLineInput) (*domain.Rental, error)
	GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	CancelRental(ctx context.Context, actor domain.Capability, rentalID int32, reason string) (*domain.Rental, error)
	CompleteRental(ctx context.Context, actor domain.Capability, rentalID int32) (*domain.Rental, error)
}

type StockService interface {
	AdjustStock(ctx context.Context, actor domain.Capability, itemID, delta int32, reason string) (*domain.Item, error)
	TransferStock(ctx context.Context, actor domain.Capability, itemID, quantity int32, fromLocation, toLocation string) (*domain.Item, error)
	ListMovements(ctx context.Context, itemID int32, page, pageSize int32) ([]domain.StockMovement, int32, error)
}

type PaymentService interface {
	ListPayments(ctx context.Context, actor domain.Capability, customerID, rentalID int32, page, pageSize int32) ([]domain.Payment, int32, error)
	PaymentSummary(ctx context.Context, actor domain.Capability, from, to time.Time) (*domain.PaymentSummary, error)
}

type AuditService interface {
	ListEntries(ctx context.Context, actor domain.Capability, page, pageSize int32) ([]domain.AuditEntry, int32, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendExtensionConfirmation(ctx context.Context, email, name string, rentalID int32, newEndDate time.Time, amountCents int32) error
	SendReturnReminder(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error
}
