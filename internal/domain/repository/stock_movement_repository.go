package repository

import "github.com/yacinebrahmi/gestock-api/internal/domain/entity"

// StockMovementRepository définit le port de persistance des mouvements de stock.
// Les mouvements sont créés uniquement par le ledger, jamais modifiés, et supprimés
// seulement en cascade de la suppression du stock.
type StockMovementRepository interface {
	// Create insère le mouvement et renseigne son ID.
	Create(movement *entity.StockMovement) error
	// ListByStock retourne l'historique complet d'un stock, du plus récent au plus ancien.
	ListByStock(stockID int64) ([]*entity.StockMovement, error)
	DeleteByStock(stockID int64) error
}
