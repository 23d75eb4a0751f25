package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse métricas del mes en curso para el panel principal.
// NetProfit = GrossProfit - FixedCosts (costos fijos activos).
type DashboardResponse struct {
	ActiveProducts int64           `json:"active_products"`
	LowStockAlerts int64           `json:"low_stock_alerts"`
	StockValue     decimal.Decimal `json:"stock_value"` // Σ stock * costo
	MonthSaleCount int64           `json:"month_sale_count"`
	MonthRevenue   decimal.Decimal `json:"month_revenue"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	FixedCosts     decimal.Decimal `json:"fixed_costs"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}

// ProductSalesDTO fila del reporte de ventas por producto.
type ProductSalesDTO struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	UnitsSold   int64           `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
}

// SupplierPurchasesDTO fila del reporte de compras por proveedor.
type SupplierPurchasesDTO struct {
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	PurchaseCount int64           `json:"purchase_count"`
	UnitsBought   int64           `json:"units_bought"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
}

// SalesBucketDTO totales de ventas por día o mes.
type SalesBucketDTO struct {
	Bucket    time.Time       `json:"bucket"`
	SaleCount int64           `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
}

// LowStockDTO fila de la lista de reposición (stock <= umbral).
type LowStockDTO struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Stock       int64  `json:"stock"`
	MinStock    int64  `json:"min_stock"`
}
