package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es una entrada inmutable del ledger: la compra de mercadería a un
// proveedor. Una vez creada no se modifica ni se elimina; las correcciones se
// hacen con ajustes de stock compensatorios.
type Purchase struct {
	ID         string
	ProductID  string
	SupplierID string
	Quantity   int64
	UnitCost   decimal.Decimal
	Total      decimal.Decimal // Quantity * UnitCost
	Note       string
	OccurredAt time.Time // fecha de la compra (UTC)
	CreatedAt  time.Time
}
