package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin        = "admin"
	RoleGestionnaire = "gestionnaire"
	RoleConsultation = "consultation"
)

// User représente un utilisateur de l'application, rattaché à un service.
type User struct {
	ID           string // uuid
	Matricule    string // identifiant personnel, unique
	Nom          string
	PasswordHash string
	Service      string // OPERATIONS | LOGISTIQUE | RH
	Role         string
	Statut       string // "actif" | "suspendu"
	DateCreation time.Time
}
