package unit

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/security"
	"rentline-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 60)

	hash, err := security.HashPassword("hunter22")
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&domain.User{
			ID:           5,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: hash,
			Roles:        []string{"admin"},
		}, nil)

		token, user, err := svc.Login(ctx, "  Alice@Example.com ", "hunter22")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int32(5), user.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), claims.UserID)
		assert.True(t, claims.Capability().Has(domain.PermRentalsExtend))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&domain.User{
			ID:           5,
			Email:        "alice@example.com",
			PasswordHash: hash,
		}, nil)

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("BlockedUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "bob@example.com").Return(&domain.User{
			ID:           6,
			Email:        "bob@example.com",
			PasswordHash: hash,
			Blocked:      true,
		}, nil)

		_, _, err := svc.Login(ctx, "bob@example.com", "hunter22")
		assert.ErrorIs(t, err, service.ErrUserBlocked)
	})

	t.Run("EmptyCredentials", func(t *testing.T) {
		svc := service.NewAuthService(new(MockUserRepo), tokens)

		_, _, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
