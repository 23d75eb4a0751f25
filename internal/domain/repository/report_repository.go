package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Buckets válidos para la serie temporal de ventas.
const (
	BucketDay   = "day"
	BucketMonth = "month"
)

// ProductSalesRow agregado de ventas por producto en un período.
type ProductSalesRow struct {
	ProductID   string
	ProductCode string
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
	Profit      decimal.Decimal
}

// SupplierPurchasesRow agregado de compras por proveedor en un período.
type SupplierPurchasesRow struct {
	SupplierID    string
	SupplierName  string
	PurchaseCount int64
	UnitsBought   int64
	TotalSpent    decimal.Decimal
}

// SalesBucketRow totales de ventas por día o mes.
type SalesBucketRow struct {
	Bucket    time.Time
	SaleCount int64
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
}

// SalesMetrics totales de ventas de un período (dashboard).
type SalesMetrics struct {
	SaleCount int64
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
}

// ReportRepository consultas de sólo lectura sobre el ledger y el catálogo.
// Son proyecciones puras: no tienen invariantes propios.
type ReportRepository interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	GetStockValue(ctx context.Context) (decimal.Decimal, error)
	GetSalesMetrics(ctx context.Context, from, to time.Time) (SalesMetrics, error)
	GetSalesByProduct(ctx context.Context, from, to time.Time) ([]ProductSalesRow, error)
	GetPurchasesBySupplier(ctx context.Context, from, to time.Time) ([]SupplierPurchasesRow, error)
	GetSalesSeries(ctx context.Context, from, to time.Time, bucket string) ([]SalesBucketRow, error)
}
