package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implémentation du journal d'activité sur PostgreSQL (append-only).
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

// Append insère une entrée de journal.
func (r *JournalRepo) Append(entry *entity.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO journal (id, categorie, action, utilisateur, date_action)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Categorie, entry.Action, entry.Utilisateur, entry.DateAction,
	)
	if err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	return nil
}

// List retourne les entrées les plus récentes en premier.
func (r *JournalRepo) List(limit int) ([]*entity.JournalEntry, error) {
	query := `
		SELECT id, categorie, action, utilisateur, date_action
		FROM journal
		ORDER BY date_action DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	defer rows.Close()
	var list []*entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		if err := rows.Scan(&e.ID, &e.Categorie, &e.Action, &e.Utilisateur, &e.DateAction); err != nil {
			return nil, fmt.Errorf("scan journal: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
