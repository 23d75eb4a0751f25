package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo persistencia de ajustes de inventario (entradas compensatorias).
type AdjustmentRepo struct {
	q Querier
}

func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create inserta un ajuste de inventario.
func (r *AdjustmentRepo) Create(adjustment *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments
			(id, product_id, previous_qty, new_qty, delta, reason, note, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.ProductID, adjustment.PreviousQty,
		adjustment.NewQty, adjustment.Delta, adjustment.Reason, adjustment.Note,
		adjustment.OccurredAt, adjustment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// ListByProduct lista los ajustes de un producto, más recientes primero.
func (r *AdjustmentRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, product_id, previous_qty, new_qty, delta, reason, note, occurred_at, created_at
		FROM stock_adjustments
		WHERE product_id = $1
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.PreviousQty, &a.NewQty, &a.Delta,
			&a.Reason, &a.Note, &a.OccurredAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
