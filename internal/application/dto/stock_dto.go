package dto

import "time"

// CreateStockRequest corps de création d'un stock. La quantité fournie devient
// aussi la quantité initiale (point de départ du rejeu).
type CreateStockRequest struct {
	Designation    string `json:"designation"`
	Quantite       int    `json:"quantite"`
	Etat           string `json:"etat"`
	Description    string `json:"description"`
	ValeurCritique int    `json:"valeur_critique"`
}

// StockResponse représentation API d'un stock.
type StockResponse struct {
	ID               int64     `json:"id"`
	Designation      string    `json:"designation"`
	Quantite         int       `json:"quantite"`
	Etat             string    `json:"etat"`
	Description      string    `json:"description"`
	ValeurCritique   int       `json:"valeur_critique"`
	Statut           string    `json:"statut"`
	DateCreation     time.Time `json:"date_creation"`
	QuantiteInitiale int       `json:"quantite_initiale"`
}

// MovementRequest corps d'enregistrement d'un mouvement sur un stock.
type MovementRequest struct {
	Type        string `json:"type"` // APPROVISIONNEMENT | RETRAIT
	Quantite    int    `json:"quantite"`
	Description string `json:"description"`
}

// MovementResponse représentation API d'un mouvement persisté.
type MovementResponse struct {
	ID            int64     `json:"id"`
	StockID       int64     `json:"stock_id"`
	Type          string    `json:"type"`
	Quantite      int       `json:"quantite"`
	Description   string    `json:"description"`
	DateMovement  time.Time `json:"date_movement"`
	Utilisateur   string    `json:"utilisateur"`
	QuantiteAvant int       `json:"quantite_avant"`
	QuantiteApres int       `json:"quantite_apres"`
}

// FicheResponse fiche matériel : totaux rejoués, écart éventuel et rendu texte.
type FicheResponse struct {
	Stock              StockResponse      `json:"stock"`
	Mouvements         []MovementResponse `json:"mouvements"`
	TotalApprovisionne int                `json:"total_approvisionne"`
	TotalRetire        int                `json:"total_retire"`
	QuantiteCalculee   int                `json:"quantite_calculee"`
	Ecart              bool               `json:"ecart"`
	Resume             string             `json:"resume"`
}
