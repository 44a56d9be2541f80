package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, user_id, declaration_id, status, url, generation_date, attendant_id, created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (*domain.Request, error) {
	r := &domain.Request{}
	var url, attendantID sql.NullString
	var genDate sql.NullTime
	err := row.Scan(&r.ID, &r.UserID, &r.DeclarationID, &r.Status, &url, &genDate, &attendantID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if url.Valid {
		r.URL = &url.String
	}
	if genDate.Valid {
		t := genDate.Time
		r.GenerationDate = &t
	}
	if attendantID.Valid {
		r.AttendantID = &attendantID.String
	}
	return r, nil
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = domain.RequestStatusPending
	query := `INSERT INTO requests (id, user_id, declaration_id, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, req.ID, req.UserID, req.DeclarationID, req.Status, now, now).
		Scan(&req.CreatedAt, &req.UpdatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicatePending
	}
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return req, err
}

func (r *requestRepository) List(ctx context.Context) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY created_at DESC`
	return r.queryRequests(ctx, query)
}

func (r *requestRepository) ListByUser(ctx context.Context, userID string) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryRequests(ctx, query, userID)
}

func (r *requestRepository) ListGeneratedSince(ctx context.Context, since time.Time) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
	          WHERE url IS NOT NULL AND generation_date > $1 ORDER BY generation_date DESC`
	return r.queryRequests(ctx, query, since)
}

func (r *requestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]domain.Request, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *requestRepository) HasPending(ctx context.Context, userID, declarationID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM requests WHERE user_id = $1 AND declaration_id = $2 AND status = $3)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, declarationID, domain.RequestStatusPending).Scan(&exists)
	return exists, err
}

func (r *requestRepository) MarkGenerated(ctx context.Context, id, url string, generatedAt time.Time, attendantID string) error {
	// Status, url, generation date and attendant move together; the status
	// guard makes the update a compare-and-swap against concurrent admins.
	query := `UPDATE requests SET status = $1, url = $2, generation_date = $3, attendant_id = $4, updated_at = $5
	          WHERE id = $6 AND status = $7`
	res, err := r.db.ExecContext(ctx, query, domain.RequestStatusProcessing, url, generatedAt, attendantID, time.Now(), id, domain.RequestStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, from, to domain.RequestStatus) error {
	query := `UPDATE requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *requestRepository) CountByWindow(ctx context.Context, start, end time.Time) (total, pending, completed, rejected int32, err error) {
	query := `SELECT count(*),
	                 count(*) FILTER (WHERE status = 'pending'),
	                 count(*) FILTER (WHERE status = 'completed'),
	                 count(*) FILTER (WHERE status = 'rejected')
	          FROM requests WHERE created_at >= $1 AND created_at < $2`
	err = r.db.QueryRowContext(ctx, query, start, end).Scan(&total, &pending, &completed, &rejected)
	return
}

func (r *requestRepository) ListFinalizedInWindow(ctx context.Context, start, end time.Time) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
	          WHERE created_at >= $1 AND created_at < $2 AND status IN ('completed', 'rejected')`
	return r.queryRequests(ctx, query, start, end)
}

func (r *requestRepository) CountByDeclarationType(ctx context.Context, start, end time.Time) ([]domain.DeclarationTypeCount, error) {
	query := `SELECT r.declaration_id, d.type, count(r.id)
	          FROM requests r INNER JOIN declarations d ON d.id = r.declaration_id
	          WHERE r.created_at >= $1 AND r.created_at < $2
	          GROUP BY r.declaration_id, d.type`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.DeclarationTypeCount
	for rows.Next() {
		var c domain.DeclarationTypeCount
		if err := rows.Scan(&c.DeclarationID, &c.DeclarationType, &c.TotalRequests); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *requestRepository) CountByDay(ctx context.Context, start, end time.Time) ([]domain.DayTotal, error) {
	query := `SELECT EXTRACT(DAY FROM created_at)::int AS day, count(id)
	          FROM requests WHERE created_at >= $1 AND created_at < $2
	          GROUP BY day ORDER BY day ASC`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.DayTotal
	for rows.Next() {
		var d domain.DayTotal
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, err
		}
		totals = append(totals, d)
	}
	return totals, rows.Err()
}
