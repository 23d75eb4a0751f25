package repository

import "github.com/jhoicas/reventa-api/internal/domain/entity"

// FixedCostRepository puerto de persistencia para costos fijos.
type FixedCostRepository interface {
	Create(cost *entity.FixedCost) error
	GetByID(id string) (*entity.FixedCost, error)
	ListActive() ([]*entity.FixedCost, error)
	Update(cost *entity.FixedCost) error
	Deactivate(id string) error
}
