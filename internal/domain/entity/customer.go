package entity

import "time"

// Customer representa un cliente opcionalmente asociado a una venta.
type Customer struct {
	ID        string
	Document  string // DNI o documento de identidad, único
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
