package domain

import "errors"

// Erreurs métier (sans dépendances externes).
var (
	ErrNotFound              = errors.New("ressource introuvable")
	ErrUserNotFound          = errors.New("utilisateur introuvable")
	ErrMatriculeDejaUtilise  = errors.New("le matricule est déjà enregistré")
	ErrInvalidInput          = errors.New("entrée invalide")
	ErrUnauthorized          = errors.New("non autorisé")
	ErrForbidden             = errors.New("accès refusé")
	ErrQuantiteInsuffisante  = errors.New("quantité en stock insuffisante")
)
