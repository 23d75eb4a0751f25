// Package reports contiene los casos de uso de lectura: dashboard, reportes
// por producto/proveedor y la serie temporal de ventas. Son proyecciones puras
// sobre el ledger; no tienen invariantes propios.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// UseCase agrupa los reportes de negocio.
type UseCase struct {
	reportRepo    repository.ReportRepository
	fixedCostRepo repository.FixedCostRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(reportRepo repository.ReportRepository, fixedCostRepo repository.FixedCostRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo, fixedCostRepo: fixedCostRepo}
}

// Dashboard arma las métricas del mes en curso.
//
// Cuatro consultas en paralelo:
//  1. CountActiveProducts + CountLowStock
//  2. GetStockValue
//  3. GetSalesMetrics(mes)
//  4. ListActive (costos fijos) para la ganancia neta
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type countsResult struct {
		products, lowStock int64
		err                error
	}
	type valueResult struct {
		value decimal.Decimal
		err   error
	}
	type salesResult struct {
		metrics repository.SalesMetrics
		err     error
	}
	type costsResult struct {
		total decimal.Decimal
		err   error
	}

	countsCh := make(chan countsResult, 1)
	valueCh := make(chan valueResult, 1)
	salesCh := make(chan salesResult, 1)
	costsCh := make(chan costsResult, 1)

	go func() {
		products, err := uc.reportRepo.CountActiveProducts(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		lowStock, err := uc.reportRepo.CountLowStock(ctx)
		countsCh <- countsResult{products: products, lowStock: lowStock, err: err}
	}()
	go func() {
		value, err := uc.reportRepo.GetStockValue(ctx)
		valueCh <- valueResult{value: value, err: err}
	}()
	go func() {
		m, err := uc.reportRepo.GetSalesMetrics(ctx, monthStart, monthEnd)
		salesCh <- salesResult{metrics: m, err: err}
	}()
	go func() {
		list, err := uc.fixedCostRepo.ListActive()
		if err != nil {
			costsCh <- costsResult{err: err}
			return
		}
		total := decimal.Zero
		for _, c := range list {
			total = total.Add(c.Amount)
		}
		costsCh <- costsResult{total: total}
	}()

	counts := <-countsCh
	value := <-valueCh
	sales := <-salesCh
	costs := <-costsCh
	for _, err := range []error{counts.err, value.err, sales.err, costs.err} {
		if err != nil {
			return nil, fmt.Errorf("reports.Dashboard: %w", err)
		}
	}

	return &dto.DashboardResponse{
		ActiveProducts: counts.products,
		LowStockAlerts: counts.lowStock,
		StockValue:     value.value,
		MonthSaleCount: sales.metrics.SaleCount,
		MonthRevenue:   sales.metrics.Revenue,
		GrossProfit:    sales.metrics.Profit,
		FixedCosts:     costs.total,
		NetProfit:      sales.metrics.Profit.Sub(costs.total),
	}, nil
}

// SalesByProduct agrega ventas por producto en el rango [from, to].
func (uc *UseCase) SalesByProduct(ctx context.Context, from, to time.Time) ([]dto.ProductSalesDTO, error) {
	rows, err := uc.reportRepo.GetSalesByProduct(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSalesDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ProductSalesDTO{
			ProductID:   r.ProductID,
			ProductCode: r.ProductCode,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
			Revenue:     r.Revenue,
			Profit:      r.Profit,
		})
	}
	return items, nil
}

// PurchasesBySupplier agrega compras por proveedor en el rango [from, to].
func (uc *UseCase) PurchasesBySupplier(ctx context.Context, from, to time.Time) ([]dto.SupplierPurchasesDTO, error) {
	rows, err := uc.reportRepo.GetPurchasesBySupplier(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierPurchasesDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.SupplierPurchasesDTO{
			SupplierID:    r.SupplierID,
			SupplierName:  r.SupplierName,
			PurchaseCount: r.PurchaseCount,
			UnitsBought:   r.UnitsBought,
			TotalSpent:    r.TotalSpent,
		})
	}
	return items, nil
}

// SalesSeries devuelve los totales de ventas por día o por mes.
func (uc *UseCase) SalesSeries(ctx context.Context, from, to time.Time, bucket string) ([]dto.SalesBucketDTO, error) {
	if bucket != repository.BucketDay && bucket != repository.BucketMonth {
		return nil, domain.NewValidationError("bucket", "debe ser day o month")
	}
	rows, err := uc.reportRepo.GetSalesSeries(ctx, from, to, bucket)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesBucketDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.SalesBucketDTO{
			Bucket:    r.Bucket,
			SaleCount: r.SaleCount,
			Revenue:   r.Revenue,
			Profit:    r.Profit,
		})
	}
	return items, nil
}
