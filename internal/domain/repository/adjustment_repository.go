package repository

import "github.com/jhoicas/reventa-api/internal/domain/entity"

// AdjustmentRepository puerto de persistencia para ajustes de inventario.
type AdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockAdjustment, error)
}
