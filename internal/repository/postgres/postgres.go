package postgres

import (
	"database/sql"

	"declarations-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
	repository.UserRepository
	repository.DeclarationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		RequestRepository:     NewRequestRepository(db),
		UserRepository:        NewUserRepository(db),
		DeclarationRepository: NewDeclarationRepository(db),
	}
}
