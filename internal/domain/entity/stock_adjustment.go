package entity

import "time"

// StockAdjustment registra una corrección manual de inventario (conteo físico,
// rotura, pérdida). Es la entrada compensatoria del ledger: guarda la cantidad
// anterior y la nueva, nunca se edita una compra o venta ya registrada.
type StockAdjustment struct {
	ID          string
	ProductID   string
	PreviousQty int64
	NewQty      int64
	Delta       int64 // NewQty - PreviousQty
	Reason      string
	Note        string
	OccurredAt  time.Time
	CreatedAt   time.Time
}
