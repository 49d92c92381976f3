package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implémentation de StockRepository sur PostgreSQL (utilisable avec pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, designation, quantite, etat, description, valeur_critique, statut, date_creation, quantite_initiale`

// Create insère le stock et renseigne son ID.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (designation, quantite, etat, description, valeur_critique, statut, date_creation, quantite_initiale)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		stock.Designation, stock.Quantite, stock.Etat, stock.Description,
		stock.ValeurCritique, stock.Statut, stock.DateCreation, stock.QuantiteInitiale,
	).Scan(&stock.ID)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID retourne un stock par ID, nil si inexistant.
func (r *StockRepo) GetByID(id int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	stock, err := r.scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return stock, nil
}

// GetForUpdate retourne le stock en verrouillant sa ligne (SELECT FOR UPDATE).
// Le verrou sérialise les mouvements concurrents sur ce stock jusqu'à la fin de
// la transaction. Retourne nil si le stock n'existe pas.
func (r *StockRepo) GetForUpdate(id int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1 FOR UPDATE`
	stock, err := r.scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// List retourne tous les stocks triés par désignation.
func (r *StockRepo) List() ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY designation`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		stock, err := r.scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, stock)
	}
	return list, rows.Err()
}

// UpdateQuantite met à jour la quantité et le statut dérivé. Appelé uniquement par
// le ledger, sous le verrou pris par GetForUpdate.
func (r *StockRepo) UpdateQuantite(id int64, quantite int, statut string) error {
	query := `UPDATE stocks SET quantite = $2, statut = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantite, statut)
	if err != nil {
		return fmt.Errorf("update quantite: %w", err)
	}
	return nil
}

// Delete supprime le stock et retourne le nombre de lignes supprimées.
func (r *StockRepo) Delete(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete stock: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanStock lit une ligne de stocks. date_creation et quantite_initiale sont
// nullables sur les anciennes lignes : les valeurs absentes restent aux zéros Go
// et la fiche appliquera ses défauts.
func (r *StockRepo) scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	var dateCreation *time.Time
	var quantiteInitiale *int
	err := row.Scan(
		&s.ID, &s.Designation, &s.Quantite, &s.Etat, &s.Description,
		&s.ValeurCritique, &s.Statut, &dateCreation, &quantiteInitiale,
	)
	if err != nil {
		return nil, err
	}
	if dateCreation != nil {
		s.DateCreation = *dateCreation
	}
	if quantiteInitiale != nil {
		s.QuantiteInitiale = *quantiteInitiale
	}
	return &s, nil
}
