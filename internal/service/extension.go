package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/extension"
	"rentline-backend/internal/logger"
	"rentline-backend/internal/metrics"
	"rentline-backend/internal/repository"
	"rentline-backend/internal/utils"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnknownSession   = errors.New("unknown or expired dialog session")
)

type extensionService struct {
	rentalRepo  repository.RentalRepository
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	auditRepo   repository.AuditRepository
	emailSvc    EmailService
	sessions    *extension.SessionStore
}

func NewExtensionService(
	rentalRepo repository.RentalRepository,
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
	emailSvc EmailService,
	sessions *extension.SessionStore,
) ExtensionService {
	return &extensionService{
		rentalRepo:  rentalRepo,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		emailSvc:    emailSvc,
		sessions:    sessions,
	}
}

func (s *extensionService) QuoteExtension(ctx context.Context, rentalID int32, req domain.ExtensionRequest) (*domain.ExtensionQuote, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return extension.QuoteExtension(rental, req)
}

func (s *extensionService) CheckAvailability(ctx context.Context, rentalID int32, req domain.ExtensionRequest) (*domain.AvailabilityResult, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	quote, err := extension.QuoteExtension(rental, req)
	if err != nil {
		return nil, err
	}

	session := s.sessions.Create(rentalID)

	conflicts, err := s.findConflicts(ctx, rental, quote.NewEndDate)
	if err != nil {
		return nil, err
	}

	if len(conflicts) == 0 {
		if err := session.MarkAvailable(); err != nil {
			return nil, err
		}
		// Nothing to resolve; the dialog is over before it opened.
		s.sessions.Delete(session.ID)
		metrics.IncExtensionCheck("available")
		return &domain.AvailabilityResult{Available: true, SessionID: session.ID}, nil
	}

	solutions := extension.ProposeSolutions(rental.Lines, conflicts, quote.NewEndDate)
	if err := session.MarkConflicted(conflicts, solutions); err != nil {
		return nil, err
	}

	metrics.IncExtensionCheck("conflicted")
	for _, sol := range solutions {
		metrics.IncSolutionProposed(string(sol.Type))
	}
	logger.InfoContext(ctx, "Extension availability check found conflicts",
		"rental_id", rentalID, "conflicts", len(conflicts), "solutions", len(solutions))

	return &domain.AvailabilityResult{
		Available: false,
		SessionID: session.ID,
		Conflicts: conflicts,
		Solutions: solutions,
	}, nil
}

// findConflicts reports, per item, whether the requested window can be
// satisfied by available stock. A conflict entry exists only when the
// overlapping reservations leave less than the line's quantity available.
func (s *extensionService) findConflicts(ctx context.Context, rental *domain.Rental, requestedEnd time.Time) (map[int32]domain.BookingConflict, error) {
	conflicts := make(map[int32]domain.BookingConflict)

	for _, ln := range rental.Lines {
		windowStart := utils.AddDays(ln.CurrentEndDate, 1)
		bookings, err := s.bookingRepo.ListOverlapping(ctx, ln.ItemID, windowStart, requestedEnd, rental.ID)
		if err != nil {
			return nil, err
		}
		if len(bookings) == 0 {
			continue
		}

		item, err := s.itemRepo.GetByID(ctx, ln.ItemID)
		if err != nil {
			return nil, err
		}

		var reserved int32
		earliest := bookings[0].StartDate
		customer := bookings[0].CustomerName
		for _, b := range bookings {
			reserved += b.Quantity
			if b.StartDate.Before(earliest) {
				earliest = b.StartDate
				customer = b.CustomerName
			}
		}

		available := item.QuantityOnHand - reserved
		if available < 0 {
			available = 0
		}
		if available >= ln.Quantity {
			continue
		}

		conflict := domain.BookingConflict{
			ItemID:                   ln.ItemID,
			ItemName:                 ln.ItemName,
			ConflictingBookingsCount: len(bookings),
			EarliestConflictDate:     utils.NormalizeDate(earliest),
			ConflictingCustomer:      customer,
			RequestedQuantity:        ln.Quantity,
			AvailableQuantity:        available,
		}
		// The item can still be extended up to the day before the first
		// overlapping reservation, when that leaves any room at all.
		if maxDate := utils.AddDays(earliest, -1); maxDate.After(utils.NormalizeDate(ln.CurrentEndDate)) {
			conflict.MaxExtendableDate = &maxDate
		}
		conflicts[ln.ItemID] = conflict
	}

	return conflicts, nil
}

func (s *extensionService) SelectSolution(ctx context.Context, sessionID string, index int) (*domain.ResolutionSolution, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, ErrUnknownSession
	}
	if err := session.SelectSolution(index); err != nil {
		return nil, err
	}
	return session.Selected, nil
}

func (s *extensionService) CancelDialog(ctx context.Context, sessionID string) error {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return ErrUnknownSession
	}
	if err := session.Cancel(); err != nil {
		return err
	}
	s.sessions.Delete(sessionID)
	return nil
}

func (s *extensionService) SubmitExtension(ctx context.Context, actor domain.Capability, rentalID int32, sub domain.ExtensionSubmission) (*domain.Rental, error) {
	if !actor.Has(domain.PermRentalsExtend) {
		return nil, ErrPermissionDenied
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive && rental.Status != domain.RentalStatusExtended {
		return nil, fmt.Errorf("rental %d is %s and cannot be extended", rentalID, rental.Status)
	}

	newEnd, err := utils.ParseDate(sub.NewEndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid new end date: %w", err)
	}
	if len(sub.Items) == 0 {
		return nil, errors.New("extension submission has no items")
	}
	if sub.PaymentAmountCents < 0 {
		return nil, errors.New("payment amount must not be negative")
	}

	lineIDs := make([]int32, 0, len(sub.Items))
	for _, it := range sub.Items {
		if it.Action != domain.ExtensionItemActionExtend {
			continue
		}
		ln := rental.LineByID(it.LineID)
		if ln == nil {
			return nil, fmt.Errorf("line %d does not belong to rental %d", it.LineID, rentalID)
		}
		if newEnd.Before(ln.CurrentEndDate) {
			return nil, fmt.Errorf("line %d: new end date %s is before the current end date", it.LineID, sub.NewEndDate)
		}
		lineIDs = append(lineIDs, it.LineID)
	}
	if len(lineIDs) == 0 {
		return nil, errors.New("extension submission extends no lines")
	}

	if err := s.rentalRepo.UpdateLineEndDates(ctx, rentalID, lineIDs, newEnd); err != nil {
		return nil, err
	}

	rental.Status = domain.RentalStatusExtended
	rental.TotalCostCents += sub.PaymentAmountCents
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	status := domain.PaymentStatusPending
	if sub.PaymentOption == domain.PaymentOptionPayNow {
		status = domain.PaymentStatusCollected
	}
	payment := &domain.Payment{
		RentalID:    rentalID,
		CustomerID:  rental.CustomerID,
		AmountCents: sub.PaymentAmountCents,
		Option:      sub.PaymentOption,
		Status:      status,
		Description: fmt.Sprintf("Extension of rental %d to %s", rentalID, sub.NewEndDate),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("recording extension payment: %w", err)
	}

	audit := &domain.AuditEntry{
		ActorID:  actor.UserID,
		Action:   "rental.extend",
		Entity:   "rental",
		EntityID: rentalID,
		Detail:   fmt.Sprintf("extended %d line(s) to %s, charged %d cents", len(lineIDs), sub.NewEndDate, sub.PaymentAmountCents),
	}
	_ = s.auditRepo.Create(ctx, audit)

	customer, _ := s.userRepo.GetByID(ctx, rental.CustomerID)
	if customer != nil {
		if err := s.emailSvc.SendExtensionConfirmation(ctx, customer.Email, customer.Name, rentalID, newEnd, sub.PaymentAmountCents); err != nil {
			logger.WarnContext(ctx, "Failed to send extension confirmation", "rental_id", rentalID, "error", err)
		}
	}

	// A submission that came out of a conflict dialog closes that dialog.
	if sub.SessionID != "" {
		if session := s.sessions.Get(sub.SessionID); session != nil {
			if _, err := session.Apply(); err != nil {
				logger.WarnContext(ctx, "Dialog session could not be applied", "session_id", sub.SessionID, "error", err)
			}
			s.sessions.Delete(sub.SessionID)
		}
	}

	metrics.IncExtensionSubmitted()

	return s.rentalRepo.GetByID(ctx, rentalID)
}
