package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, name, email, password_hash, roles, permissions, blocked, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, pq.Array(&user.Roles), pq.Array(&user.Permissions), &user.Blocked, &user.CreatedOn)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT id, name, email, password_hash, roles, permissions, blocked, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, pq.Array(&user.Roles), pq.Array(&user.Permissions), &user.Blocked, &user.CreatedOn)
	if err != nil {
		return nil, err
	}
	return user, nil
}
