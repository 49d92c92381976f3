package repository

import "github.com/yacinebrahmi/gestock-api/internal/domain/entity"

// JournalRepository définit le port du journal d'activité (append-only).
type JournalRepository interface {
	Append(entry *entity.JournalEntry) error
	// List retourne les entrées les plus récentes en premier, limitées à limit.
	List(limit int) ([]*entity.JournalEntry, error)
}
