package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yacinebrahmi/gestock-api/internal/application/auth"
	"github.com/yacinebrahmi/gestock-api/internal/application/journal"
	"github.com/yacinebrahmi/gestock-api/internal/application/ledger"
	"github.com/yacinebrahmi/gestock-api/internal/application/stocks"
	"github.com/yacinebrahmi/gestock-api/internal/domain/habilitation"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	StockUC   *stocks.StockUseCase
	LedgerUC  *ledger.LedgerUseCase
	JournalUC *journal.JournalUseCase
	PDFGen    ledger.FichePDFGenerator
	Registre  *habilitation.Registre
	JWTSecret string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stocks : accès conditionné à l'habilitation du service sur la table stocks
	stockGroup := protected.Group("/stocks", RequireService("stocks", deps.Registre))
	stockHandler := NewStockHandler(deps.StockUC, deps.LedgerUC, deps.PDFGen)
	stockGroup.Post("/", stockHandler.Create)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Delete("/:id", stockHandler.Delete)
	stockGroup.Post("/:id/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/:id/fiche", stockHandler.GetFiche)
	stockGroup.Get("/:id/fiche/pdf", stockHandler.GetFichePDF)

	// Journal d'activité (protégé)
	journalHandler := NewJournalHandler(deps.JournalUC)
	protected.Get("/journal", journalHandler.List)
}
