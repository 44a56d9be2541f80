package repository

import (
	"context"
	"time"

	"declarations-backend/internal/domain"
)

type RequestRepository interface {
	// Create inserts a new pending request. Returns ErrDuplicatePending if a
	// pending request already exists for the same (user, declaration) pair.
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Request, error)
	ListGeneratedSince(ctx context.Context, since time.Time) ([]domain.Request, error)
	HasPending(ctx context.Context, userID, declarationID string) (bool, error)

	// MarkGenerated sets status, url, generation date and attendant in a
	// single statement, guarded on the current status still being pending.
	// Returns ErrNotFound when the guard fails (request gone or already
	// picked up by a concurrent generation).
	MarkGenerated(ctx context.Context, id, url string, generatedAt time.Time, attendantID string) error

	// UpdateStatus sets the status guarded on the observed current status
	// (compare-and-swap). Returns ErrNotFound when the guard fails.
	UpdateStatus(ctx context.Context, id string, from, to domain.RequestStatus) error

	// Analytics queries over [start, end).
	CountByWindow(ctx context.Context, start, end time.Time) (total, pending, completed, rejected int32, err error)
	ListFinalizedInWindow(ctx context.Context, start, end time.Time) ([]domain.Request, error)
	CountByDeclarationType(ctx context.Context, start, end time.Time) ([]domain.DeclarationTypeCount, error)
	CountByDay(ctx context.Context, start, end time.Time) ([]domain.DayTotal, error)
}

// UserRepository is the read-only adapter over the identity provider's
// user records.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
}

// DeclarationRepository is the read-only adapter over the template
// catalog's declaration records.
type DeclarationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Declaration, error)
	ListActive(ctx context.Context) ([]domain.Declaration, error)
}
