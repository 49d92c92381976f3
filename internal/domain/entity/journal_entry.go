package entity

import "time"

// Catégories d'entrées du journal d'activité.
const (
	JournalConnexion    = "CONNEXION"
	JournalModification = "MODIFICATION"
	JournalSuppression  = "SUPPRESSION"
)

// JournalEntry est une entrée du journal d'activité (append-only) : qui a fait quoi, quand.
// Jamais modifiée ni supprimée.
type JournalEntry struct {
	ID          string // uuid
	Categorie   string
	Action      string // description libre de l'action
	Utilisateur string // matricule de l'acteur
	DateAction  time.Time
}
