package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/repository"
)

type analyticsService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
}

func NewAnalyticsService(requestRepo repository.RequestRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{requestRepo: requestRepo, userRepo: userRepo}
}

// monthWindow returns [first day of month, first day of next month),
// which covers every calendar day regardless of month length.
func monthWindow(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month: %d", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

func (s *analyticsService) Overview(ctx context.Context, callerID string, month, year int) (*domain.RequestOverview, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	start, end, err := monthWindow(month, year)
	if err != nil {
		return nil, err
	}

	total, pending, completed, rejected, err := s.requestRepo.CountByWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	approvalRate := 0.0
	if completed+rejected > 0 {
		approvalRate = float64(completed) / float64(completed+rejected) * 100
	}

	finalized, err := s.requestRepo.ListFinalizedInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	averageCompletion := 0.0
	if len(finalized) > 0 {
		var totalSeconds float64
		for _, req := range finalized {
			totalSeconds += req.UpdatedAt.Sub(req.CreatedAt).Seconds()
		}
		averageCompletion = totalSeconds / float64(len(finalized))
	}

	return &domain.RequestOverview{
		TotalRequests:         total,
		PendingRequests:       pending,
		ApprovalRate:          approvalRate,
		AverageCompletionTime: averageCompletion,
	}, nil
}

func (s *analyticsService) ByDeclarationType(ctx context.Context, callerID string, month, year int) ([]domain.DeclarationTypeCount, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	start, end, err := monthWindow(month, year)
	if err != nil {
		return nil, err
	}
	return s.requestRepo.CountByDeclarationType(ctx, start, end)
}

func (s *analyticsService) ByDay(ctx context.Context, callerID string, month, year int) ([]domain.DailyCount, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	start, end, err := monthWindow(month, year)
	if err != nil {
		return nil, err
	}

	totals, err := s.requestRepo.CountByDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.DailyCount, 0, len(totals))
	for _, t := range totals {
		counts = append(counts, domain.DailyCount{
			Date:          fmt.Sprintf("%02d/%02d", t.Day, month),
			TotalRequests: t.Total,
		})
	}
	return counts, nil
}

func (s *analyticsService) requireAdmin(ctx context.Context, callerID string) error {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.IsAdmin {
		return ErrPermissionDenied
	}
	return nil
}
