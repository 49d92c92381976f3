package entity

import "time"

// Statuts de sévérité d'un stock (du plus sain au plus critique).
const (
	StatutVert   = "VERT"
	StatutOrange = "ORANGE"
	StatutRouge  = "ROUGE"
	StatutViolet = "VIOLET"
)

// Stock représente un article de matériel avec sa quantité en magasin.
// La quantité n'est jamais modifiée directement : chaque changement passe par le
// livre des mouvements (ledger) qui l'enregistre et la met à jour atomiquement.
type Stock struct {
	ID               int64
	Designation      string
	Quantite         int
	Etat             string // état physique du matériel (neuf, usagé, réformé, ...)
	Description      string
	ValeurCritique   int // seuil en dessous duquel le stock est considéré faible
	Statut           string
	DateCreation     time.Time
	QuantiteInitiale int // figée à la création, sert de point de départ au rejeu
}

// DeriveStatut calcule le statut de sévérité à partir de la quantité et du seuil critique.
func DeriveStatut(quantite, valeurCritique int) string {
	switch {
	case quantite <= 0:
		return StatutViolet
	case quantite <= valeurCritique:
		return StatutRouge
	case quantite <= 2*valeurCritique:
		return StatutOrange
	default:
		return StatutVert
	}
}

// LibelleStatut traduit un code statut en libellé lisible. Tout code hors des
// quatre niveaux connus est rendu "Inconnu".
func LibelleStatut(statut string) string {
	switch statut {
	case StatutVert:
		return "Normal"
	case StatutOrange:
		return "Attention"
	case StatutRouge:
		return "Faible"
	case StatutViolet:
		return "Critique"
	default:
		return "Inconnu"
	}
}
