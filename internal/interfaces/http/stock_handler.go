package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yacinebrahmi/gestock-api/internal/application/dto"
	"github.com/yacinebrahmi/gestock-api/internal/application/ledger"
	"github.com/yacinebrahmi/gestock-api/internal/application/stocks"
	"github.com/yacinebrahmi/gestock-api/internal/domain"
	"github.com/yacinebrahmi/gestock-api/internal/domain/entity"
	"github.com/yacinebrahmi/gestock-api/internal/domain/fiche"
)

// StockHandler gère les requêtes HTTP des stocks, des mouvements et de la fiche matériel.
type StockHandler struct {
	stockUC  *stocks.StockUseCase
	ledgerUC *ledger.LedgerUseCase
	pdfGen   ledger.FichePDFGenerator
}

// NewStockHandler construit le handler.
func NewStockHandler(stockUC *stocks.StockUseCase, ledgerUC *ledger.LedgerUseCase, pdfGen ledger.FichePDFGenerator) *StockHandler {
	return &StockHandler{stockUC: stockUC, ledgerUC: ledgerUC, pdfGen: pdfGen}
}

// Create crée un stock avec son instantané de quantité initiale.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	stock, err := h.stockUC.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "désignation requise, quantités ≥ 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(stock))
}

// List retourne tous les stocks pour le tableau de bord.
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.stockUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStockResponse(s))
	}
	return c.JSON(fiber.Map{"total": len(out), "stocks": out})
}

// GetByID retourne un stock.
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id invalide"})
	}
	stock, err := h.stockUC.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toStockResponse(stock))
}

// Delete supprime un stock et tout son historique de mouvements.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id invalide"})
	}
	// La désignation est relue pour la tracer dans le journal de suppression.
	stock, err := h.stockUC.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	ctx := ledger.WithUtilisateur(c.Context(), GetMatricule(c))
	if err := h.ledgerUC.DeleteStock(ctx, id, stock.Designation); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock introuvable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "stock supprimé"})
}

// RegisterMovement applique un mouvement (approvisionnement ou retrait) sur un stock.
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id invalide"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	movement, err := h.ledgerUC.ApplyMovement(c.Context(), ledger.MovementInput{
		StockID:     id,
		Type:        in.Type,
		Quantite:    in.Quantite,
		Description: in.Description,
		Utilisateur: GetMatricule(c),
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type APPROVISIONNEMENT ou RETRAIT, quantité > 0"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock introuvable"})
		}
		if err == domain.ErrQuantiteInsuffisante {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUANTITE_INSUFFISANTE", Message: "quantité en stock insuffisante"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// GetFiche reconstruit et retourne la fiche matériel.
func (h *StockHandler) GetFiche(c *fiber.Ctx) error {
	f, fail := h.buildFiche(c)
	if fail != nil {
		return fail(c)
	}
	return c.JSON(toFicheResponse(f))
}

// GetFichePDF rend la fiche matériel en PDF.
func (h *StockHandler) GetFichePDF(c *fiber.Ctx) error {
	f, fail := h.buildFiche(c)
	if fail != nil {
		return fail(c)
	}
	pdfBytes, err := h.pdfGen.GenerateFichePDF(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fiche-materiel.pdf"`)
	return c.Send(pdfBytes)
}

func (h *StockHandler) buildFiche(c *fiber.Ctx) (*fiche.FicheMateriel, func(*fiber.Ctx) error) {
	id, err := parseID(c)
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id invalide"})
		}
	}
	f, err := h.ledgerUC.BuildFiche(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "stock introuvable"})
			}
		}
		return nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return f, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func toStockResponse(s *entity.Stock) dto.StockResponse {
	return dto.StockResponse{
		ID:               s.ID,
		Designation:      s.Designation,
		Quantite:         s.Quantite,
		Etat:             s.Etat,
		Description:      s.Description,
		ValeurCritique:   s.ValeurCritique,
		Statut:           s.Statut,
		DateCreation:     s.DateCreation,
		QuantiteInitiale: s.QuantiteInitiale,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		StockID:       m.StockID,
		Type:          m.Type,
		Quantite:      m.Quantite,
		Description:   m.Description,
		DateMovement:  m.DateMovement,
		Utilisateur:   m.Utilisateur,
		QuantiteAvant: m.QuantiteAvant,
		QuantiteApres: m.QuantiteApres,
	}
}

func toFicheResponse(f *fiche.FicheMateriel) dto.FicheResponse {
	mouvements := make([]dto.MovementResponse, 0, len(f.Mouvements))
	for _, m := range f.Mouvements {
		mouvements = append(mouvements, toMovementResponse(m))
	}
	stockResp := toStockResponse(f.Stock)
	stockResp.DateCreation = f.DateCreation
	stockResp.QuantiteInitiale = f.QuantiteInitiale
	return dto.FicheResponse{
		Stock:              stockResp,
		Mouvements:         mouvements,
		TotalApprovisionne: f.TotalApprovisionne,
		TotalRetire:        f.TotalRetire,
		QuantiteCalculee:   f.QuantiteCalculee,
		Ecart:              f.Ecart(),
		Resume:             f.Resume(),
	}
}
