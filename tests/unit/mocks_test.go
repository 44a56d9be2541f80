package unit

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"declarations-backend/internal/domain"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) List(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListByUser(ctx context.Context, userID string) ([]domain.Request, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) ListGeneratedSince(ctx context.Context, since time.Time) ([]domain.Request, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) HasPending(ctx context.Context, userID, declarationID string) (bool, error) {
	args := m.Called(ctx, userID, declarationID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRequestRepo) MarkGenerated(ctx context.Context, id, url string, generatedAt time.Time, attendantID string) error {
	args := m.Called(ctx, id, url, generatedAt, attendantID)
	return args.Error(0)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id string, from, to domain.RequestStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockRequestRepo) CountByWindow(ctx context.Context, start, end time.Time) (int32, int32, int32, int32, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int32), args.Get(1).(int32), args.Get(2).(int32), args.Get(3).(int32), args.Error(4)
}
func (m *MockRequestRepo) ListFinalizedInWindow(ctx context.Context, start, end time.Time) ([]domain.Request, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) CountByDeclarationType(ctx context.Context, start, end time.Time) ([]domain.DeclarationTypeCount, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.DeclarationTypeCount), args.Error(1)
}
func (m *MockRequestRepo) CountByDay(ctx context.Context, start, end time.Time) ([]domain.DayTotal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.DayTotal), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockDeclarationRepo
type MockDeclarationRepo struct {
	mock.Mock
}

func (m *MockDeclarationRepo) GetByID(ctx context.Context, id string) (*domain.Declaration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Declaration), args.Error(1)
}
func (m *MockDeclarationRepo) ListActive(ctx context.Context) ([]domain.Declaration, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Declaration), args.Error(1)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, bucket, fileName string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucket, fileName, data, contentType)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) DeleteFile(ctx context.Context, bucket, fileName string) error {
	args := m.Called(ctx, bucket, fileName)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(bucket, fileName string) (io.ReadCloser, error) {
	args := m.Called(bucket, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendStatusNotification(ctx context.Context, email, name, declarationType string, status domain.RequestStatus) error {
	args := m.Called(ctx, email, name, declarationType, status)
	return args.Error(0)
}
func (m *MockEmailService) SendOpsReport(ctx context.Context, email, name string, month time.Month, year int, overview *domain.RequestOverview) error {
	args := m.Called(ctx, email, name, month, year, overview)
	return args.Error(0)
}
