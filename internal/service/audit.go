package service

import (
	"context"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) ListEntries(ctx context.Context, actor domain.Capability, page, pageSize int32) ([]domain.AuditEntry, int32, error) {
	if !actor.Has(domain.PermAuditRead) {
		return nil, 0, ErrPermissionDenied
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.auditRepo.List(ctx, page, pageSize)
}
