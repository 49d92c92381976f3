package repository

import "github.com/yacinebrahmi/gestock-api/internal/domain/entity"

// UserRepository définit le port de persistance des utilisateurs.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByMatricule retourne nil, nil si le matricule est inconnu.
	FindByMatricule(matricule string) (*entity.User, error)
}
