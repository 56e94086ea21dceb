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
	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/application/inventory"
	"github.com/tallerpro/taller-api/internal/application/usecase"
	infrapdf "github.com/tallerpro/taller-api/internal/infrastructure/pdf"
	"github.com/tallerpro/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/tallerpro/taller-api/internal/interfaces/http"
	"github.com/tallerpro/taller-api/pkg/config"
	"github.com/tallerpro/taller-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	caiRepo := postgres.NewCAIRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewServiceItemRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	movRepo := postgres.NewInventoryMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	issueUC := facturacion.NewIssueDocumentUseCase(
		txRunner, caiRepo, docRepo, productRepo, serviceRepo, quotationRepo, movRepo,
	)
	voidUC := facturacion.NewVoidDocumentUseCase(txRunner, docRepo)
	caiUC := facturacion.NewCAIUseCase(caiRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := facturacion.NewPDFUseCase(docRepo, caiRepo, pdfGenerator)

	kardexUC := inventory.NewKardexUseCase(movRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	serviceUC := usecase.NewServiceItemUseCase(serviceRepo)
	quotationUC := usecase.NewQuotationUseCase(quotationRepo, productRepo, serviceRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware entra
	// en pánico si el archivo no existe, así que solo se monta cuando está.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Taller API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado; Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CAIUC:       caiUC,
		IssueUC:     issueUC,
		VoidUC:      voidUC,
		PDFUC:       pdfUC,
		KardexUC:    kardexUC,
		ProductUC:   productUC,
		ServiceUC:   serviceUC,
		QuotationUC: quotationUC,
		UserUC:      userUC,
		ExpenseUC:   expenseUC,
		Emisor:      cfg.Emisor,
		JWTSecret:   cfg.JWT.Secret,
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
