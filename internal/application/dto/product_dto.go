package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicia en 0 y
// sólo sube con compras; el código se genera desde el código de la categoría.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"category_id" validate:"required,uuid"`
	SupplierID    string           `json:"supplier_id" validate:"required,uuid"`
	Cost          decimal.Decimal  `json:"cost"`
	Price         *decimal.Decimal `json:"price"`          // precio manual (opcional)
	MarginPercent *decimal.Decimal `json:"margin_percent"` // alternativa: margen teórico
	MinStock      int64            `json:"min_stock"`
}

// UpdateProductRequest actualiza metadata del producto. Cost, Price y Stock no
// se tocan por acá: tienen operaciones dedicadas en el ledger.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	SupplierID  *string `json:"supplier_id" validate:"omitempty,uuid"`
	MinStock    *int64  `json:"min_stock"`
}

// SetPricingRequest fija el precio de venta: o bien manual (price) o bien por
// margen teórico (margin_percent). Exactamente uno de los dos.
type SetPricingRequest struct {
	Price         *decimal.Decimal `json:"price"`
	MarginPercent *decimal.Decimal `json:"margin_percent"`
}

// UpdateCostRequest actualiza el costo unitario del producto.
type UpdateCostRequest struct {
	Cost decimal.Decimal `json:"cost"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id"`
	SupplierID    string          `json:"supplier_id"`
	Cost          decimal.Decimal `json:"cost"`
	Price         decimal.Decimal `json:"price"`
	PricingMode   string          `json:"pricing_mode"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	RealMargin    decimal.Decimal `json:"real_margin"`
	Stock         int64           `json:"stock"`
	MinStock      int64           `json:"min_stock"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
