package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yacinebrahmi/gestock-api/internal/application/dto"
	"github.com/yacinebrahmi/gestock-api/internal/application/journal"
)

// JournalHandler consultation du journal d'activité.
type JournalHandler struct {
	uc *journal.JournalUseCase
}

// NewJournalHandler construit le handler.
func NewJournalHandler(uc *journal.JournalUseCase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

// List retourne les dernières entrées du journal, les plus récentes en premier.
func (h *JournalHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	entries, err := h.uc.List(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.JournalEntryResponse{
			ID:          e.ID,
			Categorie:   e.Categorie,
			Action:      e.Action,
			Utilisateur: e.Utilisateur,
			DateAction:  e.DateAction,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "entrees": out})
}
