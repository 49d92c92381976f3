package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yacinebrahmi/gestock-api/internal/application/dto"
	"github.com/yacinebrahmi/gestock-api/internal/domain/habilitation"
)

// RequireService retourne un middleware Fiber qui vérifie que le service porté par
// le jeton est habilité à consulter la table visée. À placer APRÈS AuthMiddleware
// (il lit LocalService).
//
// Comportement :
//   - 401 si le service est absent du contexte (AuthMiddleware manquant).
//   - 403 si le service n'est pas habilité sur la table.
func RequireService(table string, registre *habilitation.Registre) fiber.Handler {
	return func(c *fiber.Ctx) error {
		service := GetService(c)
		if service == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "service introuvable dans le jeton",
			})
		}
		if !registre.PeutAcceder(service, table) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SERVICE_NON_HABILITE",
				Message: "le service '" + service + "' n'est pas habilité sur la table '" + table + "'",
			})
		}
		return c.Next()
	}
}
