package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
//
// Las mutaciones de stock son métodos dedicados pensados para ejecutarse dentro
// de una transacción del ledger (ver application/ledger.TxRunner):
//   - GetForUpdate bloquea la fila (SELECT ... FOR UPDATE).
//   - DecrementStock es el decremento condicional "stock = stock - n WHERE
//     stock >= n"; devuelve false si ninguna fila fue afectada (guarda de
//     no-negatividad bajo concurrencia).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	ListCodesByPrefix(prefix string) ([]string, error)
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Deactivate(id string) error

	GetForUpdate(id string) (*entity.Product, error)
	IncrementStock(id string, qty int64) error
	DecrementStock(id string, qty int64) (bool, error)
	SetStock(id string, qty int64) error
	UpdateCost(id string, cost, price decimal.Decimal) error
	UpdatePricing(id string, mode string, marginPercent, price decimal.Decimal) error
}
