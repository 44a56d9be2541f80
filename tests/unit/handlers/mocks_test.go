package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"declarations-backend/internal/domain"
)

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Create(ctx context.Context, callerID, declarationID string) (*domain.Request, error) {
	args := m.Called(ctx, callerID, declarationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestService) ListAll(ctx context.Context, callerID string) ([]domain.RequestSummary, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestSummary), args.Error(1)
}
func (m *MockRequestService) ListGenerated(ctx context.Context, callerID string) ([]domain.RequestSummary, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestSummary), args.Error(1)
}
func (m *MockRequestService) ListMine(ctx context.Context, callerID string) ([]domain.UserRequest, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserRequest), args.Error(1)
}
func (m *MockRequestService) Generate(ctx context.Context, callerID string, requestIDs []string, directorID string) ([]domain.RequestSummary, error) {
	args := m.Called(ctx, callerID, requestIDs, directorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestSummary), args.Error(1)
}
func (m *MockRequestService) UpdateStatus(ctx context.Context, callerID string, requestIDs []string, target domain.RequestStatus) ([]domain.RequestSummary, error) {
	args := m.Called(ctx, callerID, requestIDs, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequestSummary), args.Error(1)
}

// MockAnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Overview(ctx context.Context, callerID string, month, year int) (*domain.RequestOverview, error) {
	args := m.Called(ctx, callerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestOverview), args.Error(1)
}
func (m *MockAnalyticsService) ByDeclarationType(ctx context.Context, callerID string, month, year int) ([]domain.DeclarationTypeCount, error) {
	args := m.Called(ctx, callerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeclarationTypeCount), args.Error(1)
}
func (m *MockAnalyticsService) ByDay(ctx context.Context, callerID string, month, year int) ([]domain.DailyCount, error) {
	args := m.Called(ctx, callerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCount), args.Error(1)
}
