package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de sólo lectura sobre el ledger y el catálogo.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CountActiveProducts total de productos activos.
func (r *ReportRepo) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active products: %w", err)
	}
	return count, nil
}

// CountLowStock total de productos activos en o por debajo del umbral.
func (r *ReportRepo) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE active AND stock <= min_stock`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// GetStockValue valor del inventario a costo (sum(stock * cost)).
func (r *ReportRepo) GetStockValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(stock * cost), 0) FROM products WHERE active`).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stock value: %w", err)
	}
	return value, nil
}

// GetSalesMetrics totales de ventas del período [from, to).
func (r *ReportRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (repository.SalesMetrics, error) {
	var m repository.SalesMetrics
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(profit), 0)
		 FROM sales WHERE occurred_at >= $1 AND occurred_at < $2`,
		from, to,
	).Scan(&m.SaleCount, &m.Revenue, &m.Profit)
	if err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("sales metrics: %w", err)
	}
	return m, nil
}

// GetSalesByProduct ventas agregadas por producto, ordenadas por ganancia.
func (r *ReportRepo) GetSalesByProduct(ctx context.Context, from, to time.Time) ([]repository.ProductSalesRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.code, p.name,
		       COALESCE(SUM(s.quantity), 0),
		       COALESCE(SUM(s.total), 0),
		       COALESCE(SUM(s.profit), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.occurred_at >= $1 AND s.occurred_at < $2
		GROUP BY p.id, p.code, p.name
		ORDER BY SUM(s.profit) DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductSalesRow
	for rows.Next() {
		var row repository.ProductSalesRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductCode, &row.ProductName,
			&row.UnitsSold, &row.Revenue, &row.Profit,
		); err != nil {
			return nil, fmt.Errorf("scan product sales: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetPurchasesBySupplier compras agregadas por proveedor, ordenadas por gasto.
func (r *ReportRepo) GetPurchasesBySupplier(ctx context.Context, from, to time.Time) ([]repository.SupplierPurchasesRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT sp.id, sp.name,
		       COUNT(*),
		       COALESCE(SUM(pu.quantity), 0),
		       COALESCE(SUM(pu.total), 0)
		FROM purchases pu
		JOIN suppliers sp ON sp.id = pu.supplier_id
		WHERE pu.occurred_at >= $1 AND pu.occurred_at < $2
		GROUP BY sp.id, sp.name
		ORDER BY SUM(pu.total) DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("purchases by supplier: %w", err)
	}
	defer rows.Close()

	var list []repository.SupplierPurchasesRow
	for rows.Next() {
		var row repository.SupplierPurchasesRow
		if err := rows.Scan(
			&row.SupplierID, &row.SupplierName,
			&row.PurchaseCount, &row.UnitsBought, &row.TotalSpent,
		); err != nil {
			return nil, fmt.Errorf("scan supplier purchases: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetSalesSeries serie temporal de ventas por día o por mes. El bucket ya
// viene validado por el caso de uso (BucketDay / BucketMonth).
func (r *ReportRepo) GetSalesSeries(ctx context.Context, from, to time.Time, bucket string) ([]repository.SalesBucketRow, error) {
	trunc := "day"
	if bucket == repository.BucketMonth {
		trunc = "month"
	}
	rows, err := r.q.Query(ctx, fmt.Sprintf(`
		SELECT date_trunc('%s', occurred_at) AS bucket,
		       COUNT(*),
		       COALESCE(SUM(total), 0),
		       COALESCE(SUM(profit), 0)
		FROM sales
		WHERE occurred_at >= $1 AND occurred_at < $2
		GROUP BY bucket
		ORDER BY bucket`, trunc),
		from, to)
	if err != nil {
		return nil, fmt.Errorf("sales series: %w", err)
	}
	defer rows.Close()

	var list []repository.SalesBucketRow
	for rows.Next() {
		var row repository.SalesBucketRow
		if err := rows.Scan(&row.Bucket, &row.SaleCount, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("scan sales bucket: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
