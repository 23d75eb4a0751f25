package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, description, category_id, supplier_id,
	cost, price, pricing_mode, margin_percent, stock, min_stock, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.Cost, &p.Price, &p.PricingMode, &p.MarginPercent, &p.Stock, &p.MinStock,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. El stock inicia en el valor que trae la entidad (0 en el alta).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description,
		product.CategoryID, product.SupplierID, product.Cost, product.Price,
		product.PricingMode, product.MarginPercent, product.Stock, product.MinStock,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, code))
	if err != nil {
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// ListCodesByPrefix devuelve los códigos que empiezan con el prefijo indicado
// (usado para generar el siguiente código de producto de una categoría).
func (r *ProductRepo) ListCodesByPrefix(prefix string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT code FROM products WHERE code LIKE $1 || '%'`, prefix)
	if err != nil {
		return nil, fmt.Errorf("list product codes: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan product code: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// List lista productos con paginación; onlyActive filtra los dados de baja.
func (r *ProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListLowStock lista los productos activos con stock en o por debajo del umbral.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE active AND stock <= min_stock ORDER BY stock, code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
			&p.Cost, &p.Price, &p.PricingMode, &p.MarginPercent, &p.Stock, &p.MinStock,
			&p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza metadata del producto. No toca cost, price, pricing ni stock
// (esos campos se mueven por las operaciones del ledger).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category_id = $4, supplier_id = $5,
		    min_stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.SupplierID, product.MinStock, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Deactivate baja lógica: el producto deja de listarse pero su historial queda.
func (r *ProductRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usar sólo dentro de una transacción del TxRunner.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// IncrementStock suma qty al stock del producto.
func (r *ProductRepo) IncrementStock(id string, qty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// DecrementStock resta qty del stock sólo si alcanza: devuelve false si ninguna
// fila fue afectada (stock insuficiente bajo contención concurrente).
func (r *ProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now()
		 WHERE id = $1 AND stock >= $2`,
		id, qty,
	)
	if err != nil {
		if isCheckViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SetStock fija el stock en un valor absoluto (ajustes de inventario).
func (r *ProductRepo) SetStock(id string, qty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// UpdateCost actualiza costo y precio (el precio ya viene recalculado si el
// producto está en modo margen).
func (r *ProductRepo) UpdateCost(id string, cost, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET cost = $2, price = $3, updated_at = now() WHERE id = $1`,
		id, cost, price,
	)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}

// UpdatePricing actualiza el modo de derivación del precio y el precio vigente.
func (r *ProductRepo) UpdatePricing(id string, mode string, marginPercent, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET pricing_mode = $2, margin_percent = $3, price = $4, updated_at = now()
		 WHERE id = $1`,
		id, mode, marginPercent, price,
	)
	if err != nil {
		return fmt.Errorf("update product pricing: %w", err)
	}
	return nil
}
