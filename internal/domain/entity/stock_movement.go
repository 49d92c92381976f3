package entity

import "time"

// Types de mouvement de stock.
const (
	MovementApprovisionnement = "APPROVISIONNEMENT" // entrée : augmente la quantité
	MovementRetrait           = "RETRAIT"           // sortie : diminue la quantité
)

// StockMovement représente un changement de quantité sur un stock.
// Immuable après insertion : il n'est jamais mis à jour, et n'est supprimé qu'en
// cascade de la suppression du stock propriétaire.
// Les quantités avant/après sont capturées au moment de la décision, sous verrou de
// ligne, ce qui permet de reconstituer le solde par rejeu.
type StockMovement struct {
	ID            int64
	StockID       int64
	Type          string // APPROVISIONNEMENT ou RETRAIT
	Quantite      int    // toujours > 0, le sens est porté par Type
	Description   string
	DateMovement  time.Time
	Utilisateur   string // matricule de l'acteur
	QuantiteAvant int
	QuantiteApres int
}

// Signe retourne le delta signé appliqué au solde (+Quantite ou -Quantite).
func (m *StockMovement) Signe() int {
	if m.Type == MovementRetrait {
		return -m.Quantite
	}
	return m.Quantite
}
