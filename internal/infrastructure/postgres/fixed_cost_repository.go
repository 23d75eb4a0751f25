package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

var _ repository.FixedCostRepository = (*FixedCostRepo)(nil)

// FixedCostRepo persistencia de costos fijos mensuales.
type FixedCostRepo struct {
	q Querier
}

func NewFixedCostRepository(q Querier) *FixedCostRepo {
	return &FixedCostRepo{q: q}
}

// Create persiste un nuevo costo fijo.
func (r *FixedCostRepo) Create(cost *entity.FixedCost) error {
	query := `
		INSERT INTO fixed_costs (id, name, amount, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cost.ID, cost.Name, cost.Amount, cost.Active, cost.CreatedAt, cost.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fixed cost: %w", err)
	}
	return nil
}

// GetByID obtiene un costo fijo por ID.
func (r *FixedCostRepo) GetByID(id string) (*entity.FixedCost, error) {
	query := `SELECT id, name, amount, active, created_at, updated_at
		FROM fixed_costs WHERE id = $1`
	var c entity.FixedCost
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Amount, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fixed cost: %w", err)
	}
	return &c, nil
}

// ListActive lista los costos fijos vigentes.
func (r *FixedCostRepo) ListActive() ([]*entity.FixedCost, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, amount, active, created_at, updated_at
		 FROM fixed_costs WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list fixed costs: %w", err)
	}
	defer rows.Close()

	var list []*entity.FixedCost
	for rows.Next() {
		var c entity.FixedCost
		if err := rows.Scan(&c.ID, &c.Name, &c.Amount, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fixed cost: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y monto.
func (r *FixedCostRepo) Update(cost *entity.FixedCost) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE fixed_costs SET name = $2, amount = $3, updated_at = $4 WHERE id = $1`,
		cost.ID, cost.Name, cost.Amount, cost.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fixed cost: %w", err)
	}
	return nil
}

// Deactivate baja lógica del costo fijo.
func (r *FixedCostRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE fixed_costs SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate fixed cost: %w", err)
	}
	return nil
}
