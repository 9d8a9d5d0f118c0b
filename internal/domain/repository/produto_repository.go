package repository

import (
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
)

// ProdutoRepository define o port de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetByIDForUpdate trava a linha do produto (SELECT ... FOR UPDATE);
	// só faz sentido dentro de uma transação.
	GetByIDForUpdate(id string) (*entity.Produto, error)
	GetByCodigoBarras(codigo string) (*entity.Produto, error)
	ListAtivos() ([]*entity.Produto, error)
	ListTodos() ([]*entity.Produto, error)
	SearchByNome(nome string) ([]*entity.Produto, error)
	ListByCategoria(categoria string) ([]*entity.Produto, error)
	ListByMarca(marca string) ([]*entity.Produto, error)
	ListEstoqueBaixo() ([]*entity.Produto, error)
	ListCategorias() ([]string, error)
	ListMarcas() ([]string, error)
	Update(produto *entity.Produto) error
	UpdateEstoque(produtoID string, quantidade int) error
	Delete(id string) error
	CountAtivos() (int64, error)
	CountEstoqueBaixo() (int64, error)
	SumValorEstoque() (decimal.Decimal, error)
}
