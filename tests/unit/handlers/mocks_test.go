package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentline-backend/internal/domain"
)

// MockExtensionService
type MockExtensionService struct {
	mock.Mock
}

func (m *MockExtensionService) CheckAvailability(ctx context.Context, rentalID int32, req domain.ExtensionRequest) (*domain.AvailabilityResult, error) {
	args := m.Called(ctx, rentalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityResult), args.Error(1)
}
func (m *MockExtensionService) QuoteExtension(ctx context.Context, rentalID int32, req domain.ExtensionRequest) (*domain.ExtensionQuote, error) {
	args := m.Called(ctx, rentalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtensionQuote), args.Error(1)
}
func (m *MockExtensionService) SelectSolution(ctx context.Context, sessionID string, index int) (*domain.ResolutionSolution, error) {
	args := m.Called(ctx, sessionID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolutionSolution), args.Error(1)
}
func (m *MockExtensionService) CancelDialog(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
func (m *MockExtensionService) SubmitExtension(ctx context.Context, actor domain.Capability, rentalID int32, sub domain.ExtensionSubmission) (*domain.Rental, error) {
	args := m.Called(ctx, actor, rentalID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
