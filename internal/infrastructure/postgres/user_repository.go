package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yacinebrahmi/gestock-api/internal/domain"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implémentation de UserRepository sur PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un utilisateur. Le matricule est unique en base.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, matricule, nom, password_hash, service, role, statut, date_creation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Matricule, user.Nom, user.PasswordHash,
		user.Service, user.Role, user.Statut, user.DateCreation,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMatriculeDejaUtilise
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByMatricule retourne l'utilisateur, nil si le matricule est inconnu.
func (r *UserRepo) FindByMatricule(matricule string) (*entity.User, error) {
	query := `
		SELECT id, matricule, nom, password_hash, service, role, statut, date_creation
		FROM users WHERE matricule = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, matricule).Scan(
		&u.ID, &u.Matricule, &u.Nom, &u.PasswordHash,
		&u.Service, &u.Role, &u.Statut, &u.DateCreation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
