package repository

import "github.com/sabbatinimodas/backoffice-api/internal/domain/entity"

// ClienteRepository define o port de persistência para Cliente (DIP).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCPF(cpf string) (*entity.Cliente, error)
	ListAtivos() ([]*entity.Cliente, error)
	ListTodos() ([]*entity.Cliente, error)
	SearchByNome(nome string) ([]*entity.Cliente, error)
	// ExistsCPF e ExistsEmail consideram registros ativos e inativos.
	ExistsCPF(cpf string) (bool, error)
	ExistsEmail(email string) (bool, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
	CountAtivos() (int64, error)
}
