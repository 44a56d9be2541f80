package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/service"
)

func TestAnalyticsService_Overview(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	april := march.AddDate(0, 1, 0)

	t.Run("Non-Admin Denied", func(t *testing.T) {
		reqRepo := new(MockRequestRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewAnalyticsService(reqRepo, userRepo)

		userRepo.On("GetByID", ctx, "u-1").Return(member("u-1"), nil)

		res, err := svc.Overview(ctx, "u-1", 3, 2026)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
		assert.Nil(t, res)
	})

	t.Run("Invalid Month", func(t *testing.T) {
		reqRepo := new(MockRequestRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewAnalyticsService(reqRepo, userRepo)

		userRepo.On("GetByID", ctx, "adm-1").Return(admin("adm-1"), nil)

		res, err := svc.Overview(ctx, "adm-1", 13, 2026)
		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("Computes Approval Rate And Average Completion", func(t *testing.T) {
		reqRepo := new(MockRequestRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewAnalyticsService(reqRepo, userRepo)

		base := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
		finalized := []domain.Request{
			{ID: "r-1", Status: domain.RequestStatusCompleted, CreatedAt: base, UpdatedAt: base.Add(2 * time.Hour)},
			{ID: "r-2", Status: domain.RequestStatusCompleted, CreatedAt: base, UpdatedAt: base.Add(4 * time.Hour)},
			{ID: "r-3", Status: domain.RequestStatusRejected, CreatedAt: base, UpdatedAt: base.Add(6 * time.Hour)},
		}

		userRepo.On("GetByID", ctx, "adm-1").Return(admin("adm-1"), nil)
		reqRepo.On("CountByWindow", ctx, march, april).Return(int32(10), int32(6), int32(3), int32(1), nil)
		reqRepo.On("ListFinalizedInWindow", ctx, march, april).Return(finalized, nil)

		res, err := svc.Overview(ctx, "adm-1", 3, 2026)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), res.TotalRequests)
		assert.Equal(t, int32(6), res.PendingRequests)
		assert.InDelta(t, 75.0, res.ApprovalRate, 0.001)
		// (2h + 4h + 6h) / 3 = 4h
		assert.InDelta(t, 4*3600, res.AverageCompletionTime, 0.001)
	})

	t.Run("Zero Finalized Yields Zero Rates", func(t *testing.T) {
		reqRepo := new(MockRequestRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewAnalyticsService(reqRepo, userRepo)

		userRepo.On("GetByID", ctx, "adm-1").Return(admin("adm-1"), nil)
		reqRepo.On("CountByWindow", ctx, march, april).Return(int32(4), int32(4), int32(0), int32(0), nil)
		reqRepo.On("ListFinalizedInWindow", ctx, march, april).Return([]domain.Request{}, nil)

		res, err := svc.Overview(ctx, "adm-1", 3, 2026)
		assert.NoError(t, err)
		assert.Zero(t, res.ApprovalRate)
		assert.Zero(t, res.AverageCompletionTime)
	})
}

func TestAnalyticsService_ByDay(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	april := march.AddDate(0, 1, 0)

	t.Run("Zero-Pads Day And Month", func(t *testing.T) {
		reqRepo := new(MockRequestRepo)
		userRepo := new(MockUserRepo)
		svc := service.NewAnalyticsService(reqRepo, userRepo)

		userRepo.On("GetByID", ctx, "adm-1").Return(admin("adm-1"), nil)
		reqRepo.On("CountByDay", ctx, march, april).Return([]domain.DayTotal{
			{Day: 5, Total: 3},
			{Day: 17, Total: 1},
		}, nil)

		res, err := svc.ByDay(ctx, "adm-1", 3, 2026)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "05/03", res[0].Date)
		assert.Equal(t, int32(3), res[0].TotalRequests)
		assert.Equal(t, "17/03", res[1].Date)
	})
}

func TestAnalyticsService_ByDeclarationType(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	april := march.AddDate(0, 1, 0)

	reqRepo := new(MockRequestRepo)
	userRepo := new(MockUserRepo)
	svc := service.NewAnalyticsService(reqRepo, userRepo)

	counts := []domain.DeclarationTypeCount{
		{DeclarationID: "d-1", DeclarationType: "Declaração de Residência", TotalRequests: 7},
		{DeclarationID: "d-2", DeclarationType: "Declaração de Vínculo", TotalRequests: 2},
	}

	userRepo.On("GetByID", ctx, "adm-1").Return(admin("adm-1"), nil)
	reqRepo.On("CountByDeclarationType", ctx, march, april).Return(counts, nil)

	res, err := svc.ByDeclarationType(ctx, "adm-1", 3, 2026)
	assert.NoError(t, err)
	assert.Equal(t, counts, res)
}
