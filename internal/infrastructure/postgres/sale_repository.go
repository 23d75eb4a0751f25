package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, product_id, customer_id, quantity, unit_price, unit_cost, total, profit, occurred_at, created_at`

// SaleRepo persistencia del ledger de ventas. Sólo INSERT y SELECT.
// customer_id se guarda como NULL cuando la venta no tiene cliente.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta una venta en el ledger, con la foto del costo incluida.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.CustomerID, sale.Quantity,
		sale.UnitPrice, sale.UnitCost, sale.Total, sale.Profit,
		sale.OccurredAt, sale.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT id, product_id, COALESCE(customer_id, ''), quantity, unit_price,
		unit_cost, total, profit, occurred_at, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.CustomerID, &s.Quantity, &s.UnitPrice,
		&s.UnitCost, &s.Total, &s.Profit, &s.OccurredAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas del ledger, más recientes primero.
func (r *SaleRepo) List(filter repository.LedgerFilter) ([]*entity.Sale, error) {
	var (
		conds []string
		args  []any
	)
	addCond := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}
	if filter.ProductID != "" {
		addCond("product_id = $%d", filter.ProductID)
	}
	if filter.CustomerID != "" {
		addCond("customer_id = $%d", filter.CustomerID)
	}
	if filter.From != nil {
		addCond("occurred_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCond("occurred_at < $%d", *filter.To)
	}

	query := `SELECT id, product_id, COALESCE(customer_id, ''), quantity, unit_price,
		unit_cost, total, profit, occurred_at, created_at FROM sales`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY occurred_at DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.CustomerID, &s.Quantity, &s.UnitPrice,
			&s.UnitCost, &s.Total, &s.Profit, &s.OccurredAt, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
