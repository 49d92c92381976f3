package dto

import "time"

// LoginRequest corps de connexion.
type LoginRequest struct {
	Matricule string `json:"matricule"`
	Password  string `json:"password"`
}

// RegisterRequest corps de création d'un utilisateur.
type RegisterRequest struct {
	Matricule string `json:"matricule"`
	Nom       string `json:"nom"`
	Password  string `json:"password"`
	Service   string `json:"service"` // OPERATIONS | LOGISTIQUE | RH
	Role      string `json:"role"`
}

// UserResponse représentation API d'un utilisateur (sans le hash du mot de passe).
type UserResponse struct {
	ID           string    `json:"id"`
	Matricule    string    `json:"matricule"`
	Nom          string    `json:"nom"`
	Service      string    `json:"service"`
	Role         string    `json:"role"`
	Statut       string    `json:"statut"`
	DateCreation time.Time `json:"date_creation"`
}

// LoginResponse jeton + utilisateur connecté.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// JournalEntryResponse entrée du journal d'activité.
type JournalEntryResponse struct {
	ID          string    `json:"id"`
	Categorie   string    `json:"categorie"`
	Action      string    `json:"action"`
	Utilisateur string    `json:"utilisateur"`
	DateAction  time.Time `json:"date_action"`
}
