package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
)

// CaixaRepository define o port de persistência para lançamentos do caixa.
type CaixaRepository interface {
	Create(lancamento *entity.Caixa) error
	GetByID(id string) (*entity.Caixa, error)
	ListAll() ([]*entity.Caixa, error)
	ListByTipo(entradaOuSaida string) ([]*entity.Caixa, error)
	ListByPeriodo(inicio, fim time.Time) ([]*entity.Caixa, error)
	SearchByDescricao(descricao string) ([]*entity.Caixa, error)
	// UltimoSaldo devolve o saldo do lançamento mais recente (zero se não há nenhum).
	UltimoSaldo() (decimal.Decimal, error)
}
