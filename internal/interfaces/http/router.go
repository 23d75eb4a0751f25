package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reventa-api/internal/application/ledger"
	"github.com/jhoicas/reventa-api/internal/application/reports"
	"github.com/jhoicas/reventa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	CustomerUC  *usecase.CustomerUseCase
	ProductUC   *usecase.ProductUseCase
	FixedCostUC *usecase.FixedCostUseCase
	LedgerUC    *ledger.UseCase
	HistoryUC   *ledger.HistoryUseCase
	ReportsUC   *reports.UseCase
	ReportsPDF  *reports.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Productos (catálogo + precio)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)
	products.Put("/:id/pricing", productHandler.SetPricing)
	products.Put("/:id/cost", productHandler.UpdateCost)

	// Ledger: compras, ventas y ajustes
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.HistoryUC)
	purchases := api.Group("/purchases")
	purchases.Post("/", ledgerHandler.RecordPurchase)
	purchases.Get("/", ledgerHandler.ListPurchases)

	sales := api.Group("/sales")
	sales.Post("/", ledgerHandler.RecordSale)
	sales.Get("/", ledgerHandler.ListSales)

	adjustments := api.Group("/adjustments")
	adjustments.Post("/", ledgerHandler.AdjustStock)
	adjustments.Get("/", ledgerHandler.ListAdjustments)

	// Costos fijos
	fixedCosts := api.Group("/fixed-costs")
	fixedCostHandler := NewFixedCostHandler(deps.FixedCostUC)
	fixedCosts.Post("/", fixedCostHandler.Create)
	fixedCosts.Get("/", fixedCostHandler.List)
	fixedCosts.Put("/:id", fixedCostHandler.Update)
	fixedCosts.Delete("/:id", fixedCostHandler.Deactivate)

	// Reportes
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC, deps.ReportsPDF)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/sales-by-product", reportHandler.SalesByProduct)
	reportsGroup.Get("/sales-by-product/pdf", reportHandler.SalesByProductPDF)
	reportsGroup.Get("/purchases-by-supplier", reportHandler.PurchasesBySupplier)
	reportsGroup.Get("/sales-series", reportHandler.SalesSeries)
}
