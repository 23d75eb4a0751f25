package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una entrada inmutable del ledger: la venta de un producto.
//
// UnitCost es una foto del costo del producto al momento de la venta; Profit se
// calcula sobre esa foto. Cambios posteriores de costo no alteran la ganancia
// histórica.
type Sale struct {
	ID         string
	ProductID  string
	CustomerID string // vacío si la venta es sin cliente identificado
	Quantity   int64
	UnitPrice  decimal.Decimal
	UnitCost   decimal.Decimal // costo al momento de la venta
	Total      decimal.Decimal // Quantity * UnitPrice
	Profit     decimal.Decimal // Quantity * (UnitPrice - UnitCost)
	OccurredAt time.Time
	CreatedAt  time.Time
}
