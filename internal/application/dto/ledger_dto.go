package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPurchaseRequest entrada para registrar una compra.
// OccurredAt vacío = ahora (UTC).
type RecordPurchaseRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	SupplierID string          `json:"supplier_id" validate:"required,uuid"`
	Quantity   int64           `json:"quantity" validate:"required,gt=0"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Note       string          `json:"note"`
	OccurredAt *time.Time      `json:"occurred_at"`
}

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	CustomerID string          `json:"customer_id" validate:"omitempty,uuid"`
	Quantity   int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	OccurredAt *time.Time      `json:"occurred_at"`
}

// AdjustStockRequest entrada para un ajuste manual de inventario.
type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	NewQty    int64  `json:"new_qty" validate:"min=0"`
	Reason    string `json:"reason" validate:"required"`
	Note      string `json:"note"`
}

// PurchaseResponse salida de una compra registrada.
type PurchaseResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	SupplierID string          `json:"supplier_id"`
	Quantity   int64           `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Total      decimal.Decimal `json:"total"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SaleResponse salida de una venta registrada, con la ganancia calculada.
type SaleResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	CustomerID string          `json:"customer_id,omitempty"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Total      decimal.Decimal `json:"total"`
	Profit     decimal.Decimal `json:"profit"`
	OccurredAt time.Time       `json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AdjustmentResponse salida de un ajuste de inventario.
type AdjustmentResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	PreviousQty int64     `json:"previous_qty"`
	NewQty      int64     `json:"new_qty"`
	Delta       int64     `json:"delta"`
	Reason      string    `json:"reason"`
	Note        string    `json:"note,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
