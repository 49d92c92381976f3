package postgres

import (
	"context"
	"fmt"

	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implémentation de StockMovementRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create insère le mouvement et renseigne son ID. Aucun UPDATE n'existe sur cette
// table : un mouvement est immuable une fois persisté.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (stock_id, type, quantite, description, date_movement, utilisateur, quantite_avant, quantite_apres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.StockID, m.Type, m.Quantite, m.Description,
		m.DateMovement, m.Utilisateur, m.QuantiteAvant, m.QuantiteApres,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByStock retourne l'historique d'un stock du plus récent au plus ancien.
func (r *StockMovementRepo) ListByStock(stockID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, stock_id, type, quantite, description, date_movement, utilisateur, quantite_avant, quantite_apres
		FROM stock_movements
		WHERE stock_id = $1
		ORDER BY date_movement DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, stockID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StockID, &m.Type, &m.Quantite, &m.Description,
			&m.DateMovement, &m.Utilisateur, &m.QuantiteAvant, &m.QuantiteApres); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByStock supprime tout l'historique d'un stock (cascade de la suppression du stock).
func (r *StockMovementRepo) DeleteByStock(stockID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE stock_id = $1`, stockID)
	if err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}
