package stocks

import (
	"time"

	"github.com/yacinebrahmi/gestock-api/internal/application/dto"
	"github.com/yacinebrahmi/gestock-api/internal/domain"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/repository"
)

// StockUseCase gère le cycle de vie des stocks hors mouvements : création avec
// instantané de la quantité initiale, consultation, liste pour les tableaux de bord.
// Les changements de quantité passent exclusivement par le ledger.
type StockUseCase struct {
	stockRepo repository.StockRepository
}

// NewStockUseCase construit le cas d'usage.
func NewStockUseCase(stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// Create crée un stock : fige la quantité initiale et la date de création, dérive le
// statut depuis la quantité et le seuil critique.
func (uc *StockUseCase) Create(in dto.CreateStockRequest) (*entity.Stock, error) {
	if in.Designation == "" || in.Quantite < 0 || in.ValeurCritique < 0 {
		return nil, domain.ErrInvalidInput
	}
	stock := &entity.Stock{
		Designation:      in.Designation,
		Quantite:         in.Quantite,
		Etat:             in.Etat,
		Description:      in.Description,
		ValeurCritique:   in.ValeurCritique,
		Statut:           entity.DeriveStatut(in.Quantite, in.ValeurCritique),
		DateCreation:     time.Now(),
		QuantiteInitiale: in.Quantite,
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// GetByID retourne un stock, ErrNotFound s'il n'existe pas.
func (uc *StockUseCase) GetByID(id int64) (*entity.Stock, error) {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return stock, nil
}

// List retourne tous les stocks.
func (uc *StockUseCase) List() ([]*entity.Stock, error) {
	return uc.stockRepo.List()
}
