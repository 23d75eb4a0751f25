package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reventa-api/internal/application/reports"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	activeProducts int64
	lowStock       int64
	stockValue     decimal.Decimal
	metrics        repository.SalesMetrics
	productRows    []repository.ProductSalesRow
	seriesBuckets  []repository.SalesBucketRow
}

func (r *fakeReportRepo) CountActiveProducts(context.Context) (int64, error) {
	return r.activeProducts, nil
}
func (r *fakeReportRepo) CountLowStock(context.Context) (int64, error) { return r.lowStock, nil }
func (r *fakeReportRepo) GetStockValue(context.Context) (decimal.Decimal, error) {
	return r.stockValue, nil
}
func (r *fakeReportRepo) GetSalesMetrics(context.Context, time.Time, time.Time) (repository.SalesMetrics, error) {
	return r.metrics, nil
}
func (r *fakeReportRepo) GetSalesByProduct(context.Context, time.Time, time.Time) ([]repository.ProductSalesRow, error) {
	return r.productRows, nil
}
func (r *fakeReportRepo) GetPurchasesBySupplier(context.Context, time.Time, time.Time) ([]repository.SupplierPurchasesRow, error) {
	return nil, nil
}
func (r *fakeReportRepo) GetSalesSeries(context.Context, time.Time, time.Time, string) ([]repository.SalesBucketRow, error) {
	return r.seriesBuckets, nil
}

type fakeFixedCostRepo struct {
	repository.FixedCostRepository
	active []*entity.FixedCost
}

func (r *fakeFixedCostRepo) ListActive() ([]*entity.FixedCost, error) { return r.active, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

// La ganancia neta descuenta los costos fijos activos de la bruta del mes.
func TestDashboard_GananciaNetaDescuentaCostosFijos(t *testing.T) {
	uc := reports.NewUseCase(
		&fakeReportRepo{
			activeProducts: 12,
			lowStock:       3,
			stockValue:     decimal.RequireFromString("1540.00"),
			metrics: repository.SalesMetrics{
				SaleCount: 8,
				Revenue:   decimal.RequireFromString("620.00"),
				Profit:    decimal.RequireFromString("210.00"),
			},
		},
		&fakeFixedCostRepo{active: []*entity.FixedCost{
			{Name: "Alquiler stand", Amount: decimal.RequireFromString("80.00"), Active: true},
			{Name: "Envíos", Amount: decimal.RequireFromString("25.50"), Active: true},
		}},
	)

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), out.ActiveProducts)
	assert.Equal(t, int64(3), out.LowStockAlerts)
	assert.True(t, out.StockValue.Equal(decimal.RequireFromString("1540.00")))
	assert.Equal(t, int64(8), out.MonthSaleCount)
	assert.True(t, out.GrossProfit.Equal(decimal.RequireFromString("210.00")))
	assert.True(t, out.FixedCosts.Equal(decimal.RequireFromString("105.50")), "80.00 + 25.50")
	assert.True(t, out.NetProfit.Equal(decimal.RequireFromString("104.50")), "210.00 - 105.50")
}

func TestDashboard_SinCostosFijos_NetaIgualBruta(t *testing.T) {
	uc := reports.NewUseCase(
		&fakeReportRepo{
			metrics: repository.SalesMetrics{Profit: decimal.NewFromInt(90)},
		},
		&fakeFixedCostRepo{},
	)

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, out.NetProfit.Equal(decimal.NewFromInt(90)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie temporal
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesSeries_BucketInvalido_Validacion(t *testing.T) {
	uc := reports.NewUseCase(&fakeReportRepo{}, &fakeFixedCostRepo{})

	_, err := uc.SalesSeries(context.Background(), time.Now().AddDate(0, -1, 0), time.Now(), "week")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesSeries_BucketDia(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	uc := reports.NewUseCase(&fakeReportRepo{
		seriesBuckets: []repository.SalesBucketRow{
			{Bucket: day, SaleCount: 4, Revenue: decimal.NewFromInt(60), Profit: decimal.NewFromInt(20)},
		},
	}, &fakeFixedCostRepo{})

	out, err := uc.SalesSeries(context.Background(), day.AddDate(0, 0, -7), day.AddDate(0, 0, 1), repository.BucketDay)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, day, out[0].Bucket)
	assert.Equal(t, int64(4), out[0].SaleCount)
}
