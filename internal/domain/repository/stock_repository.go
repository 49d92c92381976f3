package repository

import "github.com/yacinebrahmi/gestock-api/internal/domain/entity"

// StockRepository définit le port de persistance des stocks.
// Les mises à jour de quantité passent par le ledger, dans une transaction.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id int64) (*entity.Stock, error)
	// GetForUpdate verrouille la ligne pour la durée de la transaction (SELECT FOR UPDATE)
	// afin de sérialiser les mouvements concurrents sur un même stock.
	GetForUpdate(id int64) (*entity.Stock, error)
	List() ([]*entity.Stock, error)
	UpdateQuantite(id int64, quantite int, statut string) error
	// Delete supprime le stock et retourne le nombre de lignes supprimées
	// (0 = rien à supprimer).
	Delete(id int64) (int64, error)
}
