package journal

import (
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

const limiteParDefaut = 50

// JournalUseCase consultation du journal d'activité pour le tableau de bord admin.
type JournalUseCase struct {
	journalRepo repository.JournalRepository
}

// NewJournalUseCase construit le cas d'usage.
func NewJournalUseCase(journalRepo repository.JournalRepository) *JournalUseCase {
	return &JournalUseCase{journalRepo: journalRepo}
}

// List retourne les entrées les plus récentes en premier. Une limite ≤ 0 est
// ramenée à la limite par défaut.
func (uc *JournalUseCase) List(limit int) ([]*entity.JournalEntry, error) {
	if limit <= 0 {
		limit = limiteParDefaut
	}
	return uc.journalRepo.List(limit)
}
