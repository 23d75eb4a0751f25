package repository

import "github.com/jhoicas/reventa-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByDocument(document string) (*entity.Customer, error)
	Search(term string, limit int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
