package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedCost es un costo fijo mensual del emprendimiento (alquiler, envíos,
// comisiones). Se descuenta de la ganancia bruta en el dashboard.
type FixedCost struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
