package repository

import "github.com/jhoicas/reventa-api/internal/domain/entity"

// SaleRepository puerto de persistencia para el ledger de ventas.
// Sólo inserción y lectura: las ventas nunca se editan ni se borran.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(filter LedgerFilter) ([]*entity.Sale, error)
}
