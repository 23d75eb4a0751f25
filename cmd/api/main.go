package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/reventa-api/docs"
	"github.com/jhoicas/reventa-api/internal/application/ledger"
	"github.com/jhoicas/reventa-api/internal/application/reports"
	"github.com/jhoicas/reventa-api/internal/application/usecase"
	"github.com/jhoicas/reventa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/reventa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/reventa-api/internal/metrics"
	httpRouter "github.com/jhoicas/reventa-api/internal/interfaces/http"
	"github.com/jhoicas/reventa-api/pkg/config"
	"github.com/jhoicas/reventa-api/pkg/logger"
)

// @title        Reventa API
// @version      1.0
// @description  API de gestión de inventario y reventa para pequeños emprendimientos.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	fixedCostRepo := postgres.NewFixedCostRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	fixedCostUC := usecase.NewFixedCostUseCase(fixedCostRepo)

	// Ledger: compras, ventas y ajustes son transaccionales sobre el stock
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, supplierRepo, customerRepo)
	historyUC := ledger.NewHistoryUseCase(purchaseRepo, saleRepo, adjustmentRepo)

	reportsUC := reports.NewUseCase(reportRepo, fixedCostRepo)
	pdfGenerator := pdf.NewMarotoReportGenerator()
	reportsPDF := reports.NewPDFUseCase(reportsUC, pdfGenerator)

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
		Title:    "Reventa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		CustomerUC:  customerUC,
		ProductUC:   productUC,
		FixedCostUC: fixedCostUC,
		LedgerUC:    ledgerUC,
		HistoryUC:   historyUC,
		ReportsUC:   reportsUC,
		ReportsPDF:  reportsPDF,
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
