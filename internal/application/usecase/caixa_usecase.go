package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

// CaixaUseCase lançamentos e consultas do livro caixa. O saldo resultante
// vem sempre de quem lança; nenhum recomputo entre lançamentos.
type CaixaUseCase struct {
	repo repository.CaixaRepository
}

// NewCaixaUseCase constrói o caso de uso.
func NewCaixaUseCase(repo repository.CaixaRepository) *CaixaUseCase {
	return &CaixaUseCase{repo: repo}
}

// Registrar grava uma movimentação de entrada ou saída.
func (uc *CaixaUseCase) Registrar(in dto.CreateCaixaRequest) (*dto.CaixaResponse, error) {
	if in.EntradaOuSaida != entity.CaixaEntrada && in.EntradaOuSaida != entity.CaixaSaida {
		return nil, domain.ErrInvalidInput
	}
	if in.Valor.LessThanOrEqual(decimal.Zero) || in.Descricao == "" {
		return nil, domain.ErrInvalidInput
	}
	lancamento := &entity.Caixa{
		ID:             uuid.New().String(),
		Descricao:      in.Descricao,
		EntradaOuSaida: in.EntradaOuSaida,
		Valor:          in.Valor,
		Saldo:          in.Saldo,
		Data:           time.Now(),
		Observacoes:    in.Observacoes,
	}
	if err := uc.repo.Create(lancamento); err != nil {
		return nil, err
	}
	return toCaixaResponse(lancamento), nil
}

// Listar lista os lançamentos do mais recente para o mais antigo.
func (uc *CaixaUseCase) Listar() ([]dto.CaixaResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toCaixaResponses(list), nil
}

// ListarPorTipo lista apenas entradas ou apenas saídas.
func (uc *CaixaUseCase) ListarPorTipo(tipo string) ([]dto.CaixaResponse, error) {
	if tipo != entity.CaixaEntrada && tipo != entity.CaixaSaida {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByTipo(tipo)
	if err != nil {
		return nil, err
	}
	return toCaixaResponses(list), nil
}

// ListarPorPeriodo lista os lançamentos de um intervalo de datas.
func (uc *CaixaUseCase) ListarPorPeriodo(inicio, fim time.Time) ([]dto.CaixaResponse, error) {
	list, err := uc.repo.ListByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	return toCaixaResponses(list), nil
}

// BuscarPorDescricao busca lançamentos pela descrição.
func (uc *CaixaUseCase) BuscarPorDescricao(descricao string) ([]dto.CaixaResponse, error) {
	list, err := uc.repo.SearchByDescricao(descricao)
	if err != nil {
		return nil, err
	}
	return toCaixaResponses(list), nil
}

// SaldoAtual devolve o saldo do lançamento mais recente (zero se vazio).
func (uc *CaixaUseCase) SaldoAtual() (*dto.SaldoResponse, error) {
	saldo, err := uc.repo.UltimoSaldo()
	if err != nil {
		return nil, err
	}
	return &dto.SaldoResponse{Saldo: saldo}, nil
}

func toCaixaResponse(c *entity.Caixa) *dto.CaixaResponse {
	if c == nil {
		return nil
	}
	return &dto.CaixaResponse{
		ID:             c.ID,
		Descricao:      c.Descricao,
		EntradaOuSaida: c.EntradaOuSaida,
		Valor:          c.Valor,
		Saldo:          c.Saldo,
		Data:           c.Data,
		Observacoes:    c.Observacoes,
	}
}

func toCaixaResponses(list []*entity.Caixa) []dto.CaixaResponse {
	items := make([]dto.CaixaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCaixaResponse(c))
	}
	return items
}
