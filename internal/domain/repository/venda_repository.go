package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
)

// VendaRepository define o port de persistência para Venda e seus itens.
// Os itens pertencem exclusivamente à venda (delete em cascata no banco).
type VendaRepository interface {
	Create(venda *entity.Venda) error
	CreateItem(item *entity.ItemVenda) error
	GetByID(id string) (*entity.Venda, error)
	ItensByVenda(vendaID string) ([]entity.ItemVenda, error)
	ListAll() ([]*entity.Venda, error)
	ListByPeriodo(inicio, fim time.Time) ([]*entity.Venda, error)
	ListByStatus(status string) ([]*entity.Venda, error)
	ListByCliente(clienteID string) ([]*entity.Venda, error)
	UpdateStatus(id, status string) error
	Count() (int64, error)
	// SumFaturamento soma valor_final das vendas concluídas.
	SumFaturamento() (decimal.Decimal, error)
}
