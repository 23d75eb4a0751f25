package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de derivación del precio de venta.
const (
	PricingModeManual = "manual" // precio cargado a mano
	PricingModeMargin = "margin" // precio = costo * (1 + margen/100)
)

// Product representa un producto del catálogo de reventa.
//
// Stock es la cantidad actual y sólo se modifica dentro de las operaciones
// transaccionales del ledger (compras, ventas, ajustes); nunca es negativo.
// Bajo PricingModeMargin, Price se recalcula cada vez que cambian Cost o
// MarginPercent.
type Product struct {
	ID            string
	Code          string // código único estilo TABNAT-0001
	Name          string
	Description   string
	CategoryID    string
	SupplierID    string
	Cost          decimal.Decimal // costo de compra unitario
	Price         decimal.Decimal // precio de venta unitario
	PricingMode   string
	MarginPercent decimal.Decimal // sólo relevante en modo margin
	Stock         int64
	MinStock      int64 // umbral de alerta de stock bajo
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica si el producto está en o por debajo del umbral de alerta.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
