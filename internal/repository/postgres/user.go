package postgres

import (
	"context"
	"database/sql"
	"errors"

	"declarations-backend/internal/domain"
	"declarations-backend/internal/repository"
)

// userRepository reads the identity provider's user table. Account
// management (signup, password, profile edits) happens elsewhere;
// this adapter only resolves users for authorization and rendering.
type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, is_admin, street, house_number, complement, neighborhood, city, state, postal_code, cpf, rg, issuing_agency, job_title`

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	var complement, jobTitle sql.NullString
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_active = true`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.Street, &u.HouseNumber, &complement,
		&u.Neighborhood, &u.City, &u.State, &u.PostalCode, &u.CPF, &u.RG, &u.IssuingAgency, &jobTitle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Complement = complement.String
	u.JobTitle = jobTitle.String
	return u, nil
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_admin = true AND is_active = true`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var complement, jobTitle sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.Street, &u.HouseNumber, &complement,
			&u.Neighborhood, &u.City, &u.State, &u.PostalCode, &u.CPF, &u.RG, &u.IssuingAgency, &jobTitle); err != nil {
			return nil, err
		}
		u.Complement = complement.String
		u.JobTitle = jobTitle.String
		users = append(users, u)
	}
	return users, rows.Err()
}
