package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO audit_log (actor_id, action, entity, entity_id, detail, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.ActorID, e.Action, e.Entity, e.EntityID, e.Detail, time.Now()).Scan(&e.ID)
}

func (r *auditRepository) List(ctx context.Context, page, pageSize int32) ([]domain.AuditEntry, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM audit_log`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, actor_id, action, entity, entity_id, detail, created_on
	          FROM audit_log ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.Entity, &e.EntityID, &e.Detail, &e.CreatedOn); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}
