package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	item := &domain.Item{}
	query := `SELECT id, sku, name, location, quantity_on_hand, quantity_reserved, rental_rate_cents, period_days, status, created_on, updated_on
	          FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.SKU, &item.Name, &item.Location, &item.QuantityOnHand, &item.QuantityReserved, &item.RentalRateCents, &item.PeriodDays, &item.Status, &item.CreatedOn, &item.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `UPDATE items SET location=$1, quantity_on_hand=$2, quantity_reserved=$3, rental_rate_cents=$4, period_days=$5, status=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, item.Location, item.QuantityOnHand, item.QuantityReserved, item.RentalRateCents, item.PeriodDays, item.Status, time.Now(), item.ID)
	return err
}

func (r *itemRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Item, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM items WHERE status = 'ACTIVE'`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, sku, name, location, quantity_on_hand, quantity_reserved, rental_rate_cents, period_days, status, created_on, updated_on
	          FROM items WHERE status = 'ACTIVE' ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.SKU, &item.Name, &item.Location, &item.QuantityOnHand, &item.QuantityReserved, &item.RentalRateCents, &item.PeriodDays, &item.Status, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, count, rows.Err()
}

func (r *itemRepository) CreateMovement(ctx context.Context, m *domain.StockMovement) error {
	query := `INSERT INTO stock_movements (item_id, type, quantity, from_location, to_location, reason, actor_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.ItemID, m.Type, m.Quantity, m.FromLocation, m.ToLocation, m.Reason, m.ActorID, time.Now()).Scan(&m.ID)
}

func (r *itemRepository) ListMovements(ctx context.Context, itemID int32, page, pageSize int32) ([]domain.StockMovement, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM stock_movements WHERE item_id = $1`, itemID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, item_id, type, quantity, from_location, to_location, reason, actor_id, created_on
	          FROM stock_movements WHERE item_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, itemID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.FromLocation, &m.ToLocation, &m.Reason, &m.ActorID, &m.CreatedOn); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}
	return movements, count, rows.Err()
}
