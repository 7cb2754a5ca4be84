package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Chatarreria-api/internal/application/auth"
	"github.com/jhoicas/Chatarreria-api/internal/application/catalog"
	"github.com/jhoicas/Chatarreria-api/internal/application/history"
	"github.com/jhoicas/Chatarreria-api/internal/application/payout"
	infrapdf "github.com/jhoicas/Chatarreria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Chatarreria-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/Chatarreria-api/internal/interfaces/http"
	"github.com/jhoicas/Chatarreria-api/pkg/config"
	"github.com/jhoicas/Chatarreria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("sheet", cfg.Sheet.Path).
		Msg("iniciando aplicación")

	loc := cfg.App.Location()

	// Libro de cálculo: único dueño durable del catálogo y del log.
	wb, err := sheets.NewWorkbook(cfg.Sheet.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir libro de cálculo")
	}
	priceRepo := sheets.NewPriceRepository(wb)
	txRepo := sheets.NewTransactionRepository(wb, loc)

	catalogUC := catalog.NewCatalogUseCase(priceRepo, log)
	pdfGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	payoutUC := payout.NewPayoutUseCase(catalogUC, txRepo, pdfGen, loc, log)
	historyUC := history.NewHistoryUseCase(txRepo, loc)
	authUC := auth.NewAuthUseCase(
		auth.AdminCredentials{User: cfg.Admin.User, PassHash: cfg.Admin.PassHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chatarrería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		PayoutUC:  payoutUC,
		HistoryUC: historyUC,
		JWTSecret: cfg.JWT.Secret,
		Location:  loc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
