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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, product_id, supplier_id, quantity, unit_cost, total, note, occurred_at, created_at`

// PurchaseRepo persistencia del ledger de compras. Sólo INSERT y SELECT:
// no hay UPDATE ni DELETE sobre esta tabla.
type PurchaseRepo struct {
	q Querier
}

func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta una compra en el ledger.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.ProductID, purchase.SupplierID, purchase.Quantity,
		purchase.UnitCost, purchase.Total, purchase.Note, purchase.OccurredAt,
		purchase.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductID, &p.SupplierID, &p.Quantity, &p.UnitCost,
		&p.Total, &p.Note, &p.OccurredAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// List lista compras del ledger, más recientes primero.
func (r *PurchaseRepo) List(filter repository.LedgerFilter) ([]*entity.Purchase, error) {
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
	if filter.SupplierID != "" {
		addCond("supplier_id = $%d", filter.SupplierID)
	}
	if filter.From != nil {
		addCond("occurred_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCond("occurred_at < $%d", *filter.To)
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchases`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY occurred_at DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.ProductID, &p.SupplierID, &p.Quantity, &p.UnitCost,
			&p.Total, &p.Note, &p.OccurredAt, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
