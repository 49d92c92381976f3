package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yacinebrahmi/gestock-api/internal/application/dto"
	"github.com/yacinebrahmi/gestock-api/pkg/jwt"
)

// Clés Locals Fiber pour l'identité portée par le jeton.
const (
	LocalUserID    = "user_id"
	LocalMatricule = "matricule"
	LocalService   = "service"
	LocalRole      = "role"
)

// AuthMiddleware valide le Bearer Token JWT et place l'identité dans c.Locals.
// Le matricule extrait ici est l'acteur estampillé sur les mouvements et le journal.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "en-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format attendu : Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "jeton vide"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "jeton invalide ou expiré"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalMatricule, claims.Matricule)
		c.Locals(LocalService, claims.Service)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetUserID retourne l'ID utilisateur du contexte (après AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetMatricule retourne le matricule de l'acteur courant.
func GetMatricule(c *fiber.Ctx) string {
	return localString(c, LocalMatricule)
}

// GetService retourne le service de l'acteur courant.
func GetService(c *fiber.Ctx) string {
	return localString(c, LocalService)
}

// GetRole retourne le rôle de l'acteur courant.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
