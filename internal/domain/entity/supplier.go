package entity

import "time"

// Supplier representa un proveedor asociado a compras y, vía Product, al catálogo.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Email       string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
