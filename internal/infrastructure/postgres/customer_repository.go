package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo persistencia de clientes sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. El documento es único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, document, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Document, customer.Name, customer.Phone,
		customer.Email, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.getBy("id", id)
}

// GetByDocument obtiene un cliente por documento.
func (r *CustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	return r.getBy("document", document)
}

func (r *CustomerRepo) getBy(column, value string) (*entity.Customer, error) {
	query := `SELECT id, document, name, phone, email, created_at, updated_at
		FROM customers WHERE ` + column + ` = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.Document, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Search busca clientes por nombre o documento (prefijo / substring, case-insensitive).
func (r *CustomerRepo) Search(term string, limit int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, document, name, phone, email, created_at, updated_at
		 FROM customers
		 WHERE name ILIKE '%' || $1 || '%' OR document LIKE $1 || '%'
		 ORDER BY name LIMIT $2`, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Document, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers
		 SET document = $2, name = $3, phone = $4, email = $5, updated_at = $6
		 WHERE id = $1`,
		customer.ID, customer.Document, customer.Name, customer.Phone,
		customer.Email, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Las ventas históricas conservan su customer_id en
// NULL vía ON DELETE SET NULL: el ledger nunca pierde entradas.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
