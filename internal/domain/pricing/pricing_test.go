package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/reventa-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// SuggestedPrice: precio = costo * (1 + margen/100)
// ──────────────────────────────────────────────────────────────────────────────

func TestSuggestedPrice_MargenDefault30(t *testing.T) {
	// Costo 10.00 con margen 30% → precio sugerido 13.00
	price := pricing.SuggestedPrice(decimal.NewFromInt(10), decimal.NewFromInt(30))
	assert.True(t, price.Equal(decimal.RequireFromString("13.00")),
		"esperaba 13.00, obtuve %s", price)
}

func TestSuggestedPrice_RedondeaADosDecimales(t *testing.T) {
	// 7.33 * 1.15 = 8.4295 → 8.43
	price := pricing.SuggestedPrice(
		decimal.RequireFromString("7.33"),
		decimal.NewFromInt(15),
	)
	assert.True(t, price.Equal(decimal.RequireFromString("8.43")),
		"esperaba 8.43, obtuve %s", price)
}

func TestSuggestedPrice_MargenCero(t *testing.T) {
	price := pricing.SuggestedPrice(decimal.NewFromInt(25), decimal.Zero)
	assert.True(t, price.Equal(decimal.NewFromInt(25)))
}

// ──────────────────────────────────────────────────────────────────────────────
// RealMargin: ((precio - costo) / costo) * 100
// ──────────────────────────────────────────────────────────────────────────────

func TestRealMargin_Calculo(t *testing.T) {
	// Costo 10, precio 15 → margen real 50%
	margin := pricing.RealMargin(decimal.NewFromInt(10), decimal.NewFromInt(15))
	assert.True(t, margin.Equal(decimal.NewFromInt(50)),
		"esperaba 50, obtuve %s", margin)
}

func TestRealMargin_CostoCeroDevuelveCero(t *testing.T) {
	// Con costo cero el margen no está definido: convención, cero.
	margin := pricing.RealMargin(decimal.Zero, decimal.NewFromInt(15))
	assert.True(t, margin.IsZero())
}

func TestRealMargin_PrecioDebajoDelCosto(t *testing.T) {
	// Vender a pérdida da margen negativo
	margin := pricing.RealMargin(decimal.NewFromInt(20), decimal.NewFromInt(15))
	assert.True(t, margin.Equal(decimal.NewFromInt(-25)),
		"esperaba -25, obtuve %s", margin)
}

// ──────────────────────────────────────────────────────────────────────────────
// Profit: cantidad * (precio - costo)
// ──────────────────────────────────────────────────────────────────────────────

func TestProfit_VentaTipica(t *testing.T) {
	// 20 unidades vendidas a 15.00 con costo 10.00 → ganancia 100.00
	profit := pricing.Profit(20, decimal.NewFromInt(15), decimal.NewFromInt(10))
	assert.True(t, profit.Equal(decimal.NewFromInt(100)),
		"esperaba 100.00, obtuve %s", profit)
}

func TestProfit_VentaAPerdida(t *testing.T) {
	profit := pricing.Profit(3, decimal.NewFromInt(8), decimal.NewFromInt(10))
	assert.True(t, profit.Equal(decimal.NewFromInt(-6)))
}
