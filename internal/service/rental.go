package service

import (
	"context"
	"errors"
	"fmt"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/extension"
	"rentline-backend/internal/logger"
	"rentline-backend/internal/repository"
	"rentline-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
	auditRepo  repository.AuditRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, actor domain.Capability, customerID int32, startDateStr, endDateStr string, items []domain.RentalLineInput) (*domain.Rental, error) {
	if !actor.Has(domain.PermRentalsWrite) {
		return nil, ErrPermissionDenied
	}
	if len(items) == 0 {
		return nil, errors.New("rental has no items")
	}

	start, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return nil, errors.New("end date must be on or after start date")
	}

	if _, err := s.userRepo.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("unknown customer %d: %w", customerID, err)
	}

	rental := &domain.Rental{
		CustomerID:     customerID,
		StartDate:      start,
		CurrentEndDate: end,
		Status:         domain.RentalStatusActive,
	}

	// Occupancy is inclusive of both the start and the end day.
	days := utils.DaysBetween(start, end) + 1

	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: quantity must be positive", in.ItemID)
		}
		item, err := s.itemRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return nil, fmt.Errorf("unknown item %d: %w", in.ItemID, err)
		}
		if item.QuantityOnHand-item.QuantityReserved < in.Quantity {
			return nil, fmt.Errorf("item %d: only %d of %d available", in.ItemID, item.QuantityOnHand-item.QuantityReserved, in.Quantity)
		}

		periodDays := item.PeriodDays
		if periodDays <= 0 {
			periodDays = 1
		}
		periods := days / periodDays
		if days%periodDays > 0 {
			periods++
		}
		if periods > extension.MaxPeriodCount {
			return nil, fmt.Errorf("item %d: rental spans %d periods, maximum is %d", in.ItemID, periods, extension.MaxPeriodCount)
		}

		rental.Lines = append(rental.Lines, domain.RentalLine{
			ItemID:         item.ID,
			ItemName:       item.Name,
			Quantity:       in.Quantity,
			UnitRateCents:  item.RentalRateCents,
			PeriodDays:     periodDays,
			CurrentEndDate: end,
		})
		rental.TotalCostCents += item.RentalRateCents * int32(periods) * in.Quantity

		item.QuantityReserved += in.Quantity
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Create(ctx, &domain.AuditEntry{
		ActorID:  actor.UserID,
		Action:   "rental.create",
		Entity:   "rental",
		EntityID: rental.ID,
		Detail:   fmt.Sprintf("%d line(s), %s to %s", len(rental.Lines), startDateStr, endDateStr),
	})

	logger.InfoContext(ctx, "Rental created", "rental_id", rental.ID, "customer_id", customerID, "lines", len(rental.Lines))
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) ListRentals(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rentalRepo.List(ctx, customerID, status, page, pageSize)
}

func (s *rentalService) CancelRental(ctx context.Context, actor domain.Capability, rentalID int32, reason string) (*domain.Rental, error) {
	if !actor.Has(domain.PermRentalsWrite) {
		return nil, ErrPermissionDenied
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusCompleted || rental.Status == domain.RentalStatusCancelled {
		return nil, fmt.Errorf("rental %d is already %s", rentalID, rental.Status)
	}

	rental.Status = domain.RentalStatusCancelled
	if reason != "" {
		rental.Notes = reason
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	s.releaseStock(ctx, rental)

	_ = s.auditRepo.Create(ctx, &domain.AuditEntry{
		ActorID:  actor.UserID,
		Action:   "rental.cancel",
		Entity:   "rental",
		EntityID: rentalID,
		Detail:   reason,
	})

	return rental, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, actor domain.Capability, rentalID int32) (*domain.Rental, error) {
	if !actor.Has(domain.PermRentalsWrite) {
		return nil, ErrPermissionDenied
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status == domain.RentalStatusCompleted || rental.Status == domain.RentalStatusCancelled {
		return nil, fmt.Errorf("rental %d is already %s", rentalID, rental.Status)
	}

	rental.Status = domain.RentalStatusCompleted
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	s.releaseStock(ctx, rental)

	_ = s.auditRepo.Create(ctx, &domain.AuditEntry{
		ActorID:  actor.UserID,
		Action:   "rental.complete",
		Entity:   "rental",
		EntityID: rentalID,
	})

	return rental, nil
}

func (s *rentalService) releaseStock(ctx context.Context, rental *domain.Rental) {
	for _, ln := range rental.Lines {
		item, err := s.itemRepo.GetByID(ctx, ln.ItemID)
		if err != nil {
			logger.WarnContext(ctx, "Failed to load item while releasing stock", "item_id", ln.ItemID, "error", err)
			continue
		}
		item.QuantityReserved -= ln.Quantity
		if item.QuantityReserved < 0 {
			item.QuantityReserved = 0
		}
		if err := s.itemRepo.Update(ctx, item); err != nil {
			logger.WarnContext(ctx, "Failed to release reserved stock", "item_id", ln.ItemID, "error", err)
		}
	}
}
