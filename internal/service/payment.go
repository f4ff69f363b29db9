package service

import (
	"context"
	"errors"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
	"rentline-backend/internal/utils"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) ListPayments(ctx context.Context, actor domain.Capability, customerID, rentalID int32, page, pageSize int32) ([]domain.Payment, int32, error) {
	if !actor.Has(domain.PermPaymentsRead) {
		return nil, 0, ErrPermissionDenied
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.paymentRepo.List(ctx, customerID, rentalID, page, pageSize)
}

func (s *paymentService) PaymentSummary(ctx context.Context, actor domain.Capability, from, to time.Time) (*domain.PaymentSummary, error) {
	if !actor.Has(domain.PermPaymentsRead) {
		return nil, ErrPermissionDenied
	}
	from = utils.NormalizeDate(from)
	to = utils.NormalizeDate(to)
	if to.Before(from) {
		return nil, errors.New("summary window end must be on or after its start")
	}
	// Window is inclusive of both days; the repository query is half-open.
	return s.paymentRepo.Summary(ctx, from, utils.AddDays(to, 1))
}
