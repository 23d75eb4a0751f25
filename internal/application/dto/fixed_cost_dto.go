package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFixedCostRequest entrada para crear un costo fijo.
type CreateFixedCostRequest struct {
	Name   string          `json:"name" validate:"required,min=1,max=100"`
	Amount decimal.Decimal `json:"amount"`
}

// UpdateFixedCostRequest entrada para actualizar un costo fijo.
type UpdateFixedCostRequest struct {
	Name   *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Amount *decimal.Decimal `json:"amount"`
}

// FixedCostResponse salida de un costo fijo.
type FixedCostResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
