package ledger

import (
	"context"

	"github.com/yacinebrahmi/gestock-api/internal/domain"
	"github.com/yacinebrahmi/gestock-api/internal/domain/fiche"
)

// BuildFiche reconstruit la fiche matériel d'un stock : lecture simple, sans verrou.
// Retourne ErrNotFound si le stock n'existe pas. Au-delà, la construction est en
// mode dégradé volontaire : un échec de lecture de l'historique ne remonte pas au
// caller, la fiche est rendue avec une liste de mouvements vide (chemin de
// diagnostic, pas de mutation).
func (uc *LedgerUseCase) BuildFiche(ctx context.Context, stockID int64) (*fiche.FicheMateriel, error) {
	stock, err := uc.stockRepo.GetByID(stockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}

	mouvements, err := uc.movRepo.ListByStock(stockID)
	if err != nil {
		uc.log.Warn().Err(err).Int64("stock_id", stockID).
			Msg("historique illisible, fiche rendue sans mouvements")
		mouvements = nil
	}

	return fiche.Build(stock, mouvements), nil
}
