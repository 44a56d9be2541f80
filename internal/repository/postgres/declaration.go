package postgres

import (
	"context"
	"database/sql"
	"errors"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/repository"
)

// declarationRepository reads the template catalog's declarations.
// Template authoring and deactivation belong to the catalog service.
type declarationRepository struct {
	db *sql.DB
}

func NewDeclarationRepository(db *sql.DB) repository.DeclarationRepository {
	return &declarationRepository{db: db}
}

const declarationColumns = `id, type, title, content, footer, signature_type, is_active, created_at, updated_at`

func (r *declarationRepository) GetByID(ctx context.Context, id string) (*domain.Declaration, error) {
	d := &domain.Declaration{}
	query := `SELECT ` + declarationColumns + ` FROM declarations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Type, &d.Title, &d.Content, &d.Footer, &d.SignatureType, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *declarationRepository) ListActive(ctx context.Context) ([]domain.Declaration, error) {
	query := `SELECT ` + declarationColumns + ` FROM declarations WHERE is_active = true`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var declarations []domain.Declaration
	for rows.Next() {
		var d domain.Declaration
		if err := rows.Scan(&d.ID, &d.Type, &d.Title, &d.Content, &d.Footer, &d.SignatureType, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		declarations = append(declarations, d)
	}
	return declarations, rows.Err()
}
