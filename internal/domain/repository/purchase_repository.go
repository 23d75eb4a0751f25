package repository

import (
	"time"

	"github.com/jhoicas/reventa-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para el ledger de compras.
// Sólo inserción y lectura: las compras nunca se editan ni se borran.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	List(filter LedgerFilter) ([]*entity.Purchase, error)
}

// LedgerFilter filtros comunes para listar entradas del ledger.
type LedgerFilter struct {
	ProductID  string
	SupplierID string // sólo compras
	CustomerID string // sólo ventas
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}
