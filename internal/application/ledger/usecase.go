package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yacinebrahmi/gestock-api/internal/domain"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
	"github.com/yacinebrahmi/gestock-api/pkg/logger"
)

// LedgerUseCase est le cœur transactionnel du livre des mouvements : chaque
// changement de quantité est appliqué sous verrou de ligne (SELECT FOR UPDATE),
// persisté avec son mouvement et journalisé dans une seule transaction.
// Deux mouvements concurrents sur le même stock se sérialisent sur le verrou ;
// la quantité avant du mouvement N+1 est la quantité après du mouvement N.
type LedgerUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
	log       *logger.Logger
}

// NewLedgerUseCase construit le cas d'usage. stockRepo et movRepo sont les
// adaptateurs hors transaction, utilisés pour les lectures de la fiche.
func NewLedgerUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	movRepo repository.StockMovementRepository,
	log *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:  txRunner,
		stockRepo: stockRepo,
		movRepo:   movRepo,
		log:       log,
	}
}

// MovementInput entrée d'un mouvement à appliquer sur un stock.
type MovementInput struct {
	StockID     int64
	Type        string // APPROVISIONNEMENT | RETRAIT
	Quantite    int    // > 0
	Description string
	Utilisateur string // matricule de l'acteur, estampillé sur le mouvement et le journal
}

// ApplyMovement applique un mouvement : verrouille la ligne du stock, calcule la
// nouvelle quantité, refuse un retrait qui rendrait le solde négatif
// (ErrQuantiteInsuffisante, aucun écrit), puis persiste dans la même transaction la
// quantité mise à jour, le mouvement avec ses quantités avant/après capturées sous
// verrou, et une entrée de journal. Retourne le mouvement persisté avec son ID.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.Quantite <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementApprovisionnement && input.Type != entity.MovementRetrait {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var movement *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		journalRepo repository.JournalRepository,
	) error {
		// Verrouille la ligne du stock : les mouvements concurrents sur le même
		// stock attendent ici la fin de la transaction en cours.
		stock, err := stockRepo.GetForUpdate(input.StockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}

		avant := stock.Quantite
		var apres int
		switch input.Type {
		case entity.MovementApprovisionnement:
			apres = avant + input.Quantite
		case entity.MovementRetrait:
			apres = avant - input.Quantite
			if apres < 0 {
				return domain.ErrQuantiteInsuffisante
			}
		}

		statut := entity.DeriveStatut(apres, stock.ValeurCritique)
		if err := stockRepo.UpdateQuantite(stock.ID, apres, statut); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			StockID:       stock.ID,
			Type:          input.Type,
			Quantite:      input.Quantite,
			Description:   input.Description,
			DateMovement:  now,
			Utilisateur:   input.Utilisateur,
			QuantiteAvant: avant,
			QuantiteApres: apres,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		// Journalise le mouvement dans la même transaction. Un échec du journal
		// seul ne doit pas annuler le mouvement : on le trace et on continue.
		entry := &entity.JournalEntry{
			ID:        uuid.New().String(),
			Categorie: entity.JournalModification,
			Action: fmt.Sprintf("%s de %d sur le stock %q (%d → %d)",
				input.Type, input.Quantite, stock.Designation, avant, apres),
			Utilisateur: input.Utilisateur,
			DateAction:  now,
		}
		if err := journalRepo.Append(entry); err != nil {
			uc.log.Warn().Err(err).Int64("stock_id", stock.ID).
				Msg("entrée de journal non enregistrée pour le mouvement")
		}

		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// DeleteStock supprime un stock et tout son historique de mouvements dans une seule
// transaction, puis journalise la suppression avec la désignation pour la traçabilité.
// Si le stock n'existe pas (0 ligne supprimée), toute l'opération est annulée et
// ErrNotFound est retournée.
func (uc *LedgerUseCase) DeleteStock(ctx context.Context, stockID int64, designation string) error {
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
		journalRepo repository.JournalRepository,
	) error {
		if err := movRepo.DeleteByStock(stockID); err != nil {
			return err
		}
		n, err := stockRepo.Delete(stockID)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		entry := &entity.JournalEntry{
			ID:          uuid.New().String(),
			Categorie:   entity.JournalSuppression,
			Action:      fmt.Sprintf("suppression du stock %q (id %d) et de son historique", designation, stockID),
			Utilisateur: utilisateurFromContext(ctx),
			DateAction:  now,
		}
		if err := journalRepo.Append(entry); err != nil {
			uc.log.Warn().Err(err).Int64("stock_id", stockID).
				Msg("entrée de journal non enregistrée pour la suppression")
		}
		return nil
	})
}

// clé de contexte pour l'acteur courant.
type contextKey string

const utilisateurKey contextKey = "utilisateur"

// WithUtilisateur attache le matricule de l'acteur au contexte, pour les opérations
// qui ne le portent pas déjà dans leur entrée.
func WithUtilisateur(ctx context.Context, matricule string) context.Context {
	return context.WithValue(ctx, utilisateurKey, matricule)
}

func utilisateurFromContext(ctx context.Context) string {
	if m, ok := ctx.Value(utilisateurKey).(string); ok {
		return m
	}
	return ""
}
