package service

import (
	"context"
	"errors"
	"fmt"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/logger"
	"rentline-backend/internal/metrics"
	"rentline-backend/internal/repository"
)

type stockService struct {
	itemRepo  repository.ItemRepository
	auditRepo repository.AuditRepository
}

func NewStockService(itemRepo repository.ItemRepository, auditRepo repository.AuditRepository) StockService {
	return &stockService{itemRepo: itemRepo, auditRepo: auditRepo}
}

func (s *stockService) AdjustStock(ctx context.Context, actor domain.Capability, itemID, delta int32, reason string) (*domain.Item, error) {
	if !actor.Has(domain.PermStockWrite) {
		return nil, ErrPermissionDenied
	}
	if delta == 0 {
		return nil, errors.New("adjustment delta must not be zero")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	newOnHand := item.QuantityOnHand + delta
	if newOnHand < 0 {
		return nil, fmt.Errorf("item %d: adjustment of %d would leave %d on hand", itemID, delta, newOnHand)
	}
	if newOnHand < item.QuantityReserved {
		return nil, fmt.Errorf("item %d: %d units are reserved, cannot reduce on-hand below that", itemID, item.QuantityReserved)
	}

	item.QuantityOnHand = newOnHand
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	movement := &domain.StockMovement{
		ItemID:   itemID,
		Type:     domain.StockMovementAdjustment,
		Quantity: delta,
		Reason:   reason,
		ActorID:  actor.UserID,
	}
	if err := s.itemRepo.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("recording stock movement: %w", err)
	}

	_ = s.auditRepo.Create(ctx, &domain.AuditEntry{
		ActorID:  actor.UserID,
		Action:   "stock.adjust",
		Entity:   "item",
		EntityID: itemID,
		Detail:   fmt.Sprintf("delta %d: %s", delta, reason),
	})

	metrics.IncStockMovement(string(domain.StockMovementAdjustment))
	logger.InfoContext(ctx, "Stock adjusted", "item_id", itemID, "delta", delta, "on_hand", item.QuantityOnHand)
	return item, nil
}

func (s *stockService) TransferStock(ctx context.Context, actor domain.Capability, itemID, quantity int32, fromLocation, toLocation string) (*domain.Item, error) {
	if !actor.Has(domain.PermStockWrite) {
		return nil, ErrPermissionDenied
	}
	if quantity <= 0 {
		return nil, errors.New("transfer quantity must be positive")
	}
	if fromLocation == "" || toLocation == "" || fromLocation == toLocation {
		return nil, errors.New("transfer requires two distinct locations")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Location != fromLocation {
		return nil, fmt.Errorf("item %d is at %q, not %q", itemID, item.Location, fromLocation)
	}
	if quantity > item.QuantityOnHand {
		return nil, fmt.Errorf("item %d: cannot transfer %d, only %d on hand", itemID, quantity, item.QuantityOnHand)
	}

	item.Location = toLocation
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	movement := &domain.StockMovement{
		ItemID:       itemID,
		Type:         domain.StockMovementTransfer,
		Quantity:     quantity,
		FromLocation: fromLocation,
		ToLocation:   toLocation,
		ActorID:      actor.UserID,
	}
	if err := s.itemRepo.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("recording stock movement: %w", err)
	}

	_ = s.auditRepo.Create(ctx, &domain.AuditEntry{
		ActorID:  actor.UserID,
		Action:   "stock.transfer",
		Entity:   "item",
		EntityID: itemID,
		Detail:   fmt.Sprintf("%d units from %s to %s", quantity, fromLocation, toLocation),
	})

	metrics.IncStockMovement(string(domain.StockMovementTransfer))
	logger.InfoContext(ctx, "Stock transferred", "item_id", itemID, "quantity", quantity, "from", fromLocation, "to", toLocation)
	return item, nil
}

func (s *stockService) ListMovements(ctx context.Context, itemID int32, page, pageSize int32) ([]domain.StockMovement, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.itemRepo.ListMovements(ctx, itemID, page, pageSize)
}
