package entity

import "time"

// Category representa una categoría de productos para agrupar reportes.
type Category struct {
	ID          string
	Code        string // código corto único (ej. TABNAT), base del código de producto
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
