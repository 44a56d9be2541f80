package service

import (
	"context"
	"time"

	"declarations-backend/internal/domain"
)

type RequestService interface {
	// Create opens a new pending request for the caller. Admins cannot
	// request declarations for themselves.
	Create(ctx context.Context, callerID, declarationID string) (*domain.Request, error)

	// ListAll returns every request, newest first. Admin only.
	ListAll(ctx context.Context, callerID string) ([]domain.RequestSummary, error)

	// ListGenerated returns requests whose document was generated within
	// the last seven days, newest generation first. Admin only.
	ListGenerated(ctx context.Context, callerID string) ([]domain.RequestSummary, error)

	// ListMine returns the caller's own requests, newest first.
	ListMine(ctx context.Context, callerID string) ([]domain.UserRequest, error)

	// Generate renders, uploads and marks the given pending requests.
	// Items that cannot be generated are skipped, not errors; the result
	// holds successfully generated requests only. Admin only.
	Generate(ctx context.Context, callerID string, requestIDs []string, directorID string) ([]domain.RequestSummary, error)

	// UpdateStatus moves the given requests to target where the state
	// machine allows it; disallowed items are silently skipped. Admin only.
	UpdateStatus(ctx context.Context, callerID string, requestIDs []string, target domain.RequestStatus) ([]domain.RequestSummary, error)
}

type AnalyticsService interface {
	Overview(ctx context.Context, callerID string, month, year int) (*domain.RequestOverview, error)
	ByDeclarationType(ctx context.Context, callerID string, month, year int) ([]domain.DeclarationTypeCount, error)
	ByDay(ctx context.Context, callerID string, month, year int) ([]domain.DailyCount, error)
}

type EmailService interface {
	SendStatusNotification(ctx context.Context, email, name, declarationType string, status domain.RequestStatus) error
	SendOpsReport(ctx context.Context, email, name string, month time.Month, year int, overview *domain.RequestOverview) error
}
