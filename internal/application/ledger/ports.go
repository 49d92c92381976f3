package ledger

import (
	"context"

	"github.com/yacinebrahmi/gestock-api/internal/domain/fiche"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de base de données, en passant
// des repositories liés à cette transaction. Garantit l'atomicité du ledger :
// mise à jour du solde, insertion du mouvement et entrée de journal committent ou
// s'annulent ensemble.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		journalRepo repository.JournalRepository,
	) error) error
}

// FichePDFGenerator rend une fiche matériel en PDF.
type FichePDFGenerator interface {
	GenerateFichePDF(ctx context.Context, f *fiche.FicheMateriel) ([]byte, error)
}
