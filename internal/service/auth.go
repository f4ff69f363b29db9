package service

import (
	"context"
	"errors"
	"strings"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/logger"
	"rentline-backend/internal/repository"
	"rentline-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("user account is blocked")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not leak whether the account exists.
		return "", nil, ErrInvalidCredentials
	}
	if !security.VerifyPassword(user.PasswordHash, password) {
		logger.WarnContext(ctx, "Failed login attempt", "email", email)
		return "", nil, ErrInvalidCredentials
	}
	if user.Blocked {
		return "", nil, ErrUserBlocked
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}
