package repository

import "github.com/sabbatinimodas/backoffice-api/internal/domain/entity"

// UsuarioRepository define o port de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	ExistsEmail(email string) (bool, error)
	ListAtivos() ([]*entity.Usuario, error)
	ListTodos() ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	Delete(id string) error
}
