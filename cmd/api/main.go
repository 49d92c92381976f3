package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/yacinebrahmi/gestock-api/internal/application/auth"
	"github.com/yacinebrahmi/gestock-api/internal/application/journal"
	"github.com/yacinebrahmi/gestock-api/internal/application/ledger"
	"github.com/yacinebrahmi/gestock-api/internal/application/stocks"
	"github.com/yacinebrahmi/gestock-api/internal/domain/habilitation"
	infrapdf "github.com/yacinebrahmi/gestock-api/internal/infrastructure/pdf"
	"github.com/yacinebrahmi/gestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/yacinebrahmi/gestock-api/internal/interfaces/http"
	"github.com/yacinebrahmi/gestock-api/pkg/config"
	"github.com/yacinebrahmi/gestock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewLedgerUseCase(txRunner, stockRepo, movRepo, log)
	stockUC := stocks.NewStockUseCase(stockRepo)
	journalUC := journal.NewJournalUseCase(journalRepo)
	authUC := auth.NewAuthUseCase(userRepo, journalRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	registre := habilitation.NewRegistre()
	pdfGen := infrapdf.NewMarotoFicheGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		StockUC:   stockUC,
		LedgerUC:  ledgerUC,
		JournalUC: journalUC,
		PDFGen:    pdfGen,
		Registre:  registre,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
