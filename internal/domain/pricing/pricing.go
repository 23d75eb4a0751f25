// Package pricing contiene la aritmética de precios del negocio de reventa
// (servicio de dominio, sin dependencias de infraestructura).
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SuggestedPrice calcula el precio de venta a partir del costo y el margen
// teórico: costo * (1 + margen/100), redondeado a 2 decimales.
func SuggestedPrice(cost, marginPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(marginPercent.Div(hundred))
	return cost.Mul(factor).Round(2)
}

// RealMargin calcula el margen real en porcentaje dado un costo y un precio
// final: ((precio - costo) / costo) * 100, redondeado a 2 decimales.
// Con costo cero devuelve cero (no hay margen definible).
func RealMargin(cost, price decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return price.Sub(cost).Div(cost).Mul(hundred).Round(2)
}

// Profit calcula la ganancia de una venta: cantidad * (precio - costo),
// redondeada a 2 decimales.
func Profit(quantity int64, unitPrice, unitCost decimal.Decimal) decimal.Decimal {
	return unitPrice.Sub(unitCost).Mul(decimal.NewFromInt(quantity)).Round(2)
}
