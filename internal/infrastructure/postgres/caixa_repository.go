package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

var _ repository.CaixaRepository = (*CaixaRepo)(nil)

const caixaColumns = `id, descricao, entrada_ou_saida, valor, saldo, data, observacoes`

// CaixaRepo implementação do port CaixaRepository sobre PostgreSQL (pool ou tx).
type CaixaRepo struct {
	q Querier
}

// NewCaixaRepository constrói o adaptador de persistência do caixa.
func NewCaixaRepository(q Querier) *CaixaRepo {
	return &CaixaRepo{q: q}
}

// Create persiste um lançamento.
func (r *CaixaRepo) Create(c *entity.Caixa) error {
	query := `
		INSERT INTO caixa (id, descricao, entrada_ou_saida, valor, saldo, data, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Descricao, c.EntradaOuSaida, c.Valor, c.Saldo, c.Data, c.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("insert caixa: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento pelo ID.
func (r *CaixaRepo) GetByID(id string) (*entity.Caixa, error) {
	query := `SELECT ` + caixaColumns + ` FROM caixa WHERE id = $1`
	c, err := scanCaixa(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caixa: %w", err)
	}
	return c, nil
}

// ListAll lista os lançamentos do mais recente para o mais antigo.
func (r *CaixaRepo) ListAll() ([]*entity.Caixa, error) {
	return r.list(`SELECT ` + caixaColumns + ` FROM caixa ORDER BY data DESC`)
}

// ListByTipo lista apenas entradas ou apenas saídas.
func (r *CaixaRepo) ListByTipo(entradaOuSaida string) ([]*entity.Caixa, error) {
	query := `SELECT ` + caixaColumns + `
		FROM caixa WHERE entrada_ou_saida = $1 ORDER BY data DESC`
	return r.list(query, entradaOuSaida)
}

// ListByPeriodo lista os lançamentos de um intervalo de datas.
func (r *CaixaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Caixa, error) {
	query := `SELECT ` + caixaColumns + `
		FROM caixa WHERE data BETWEEN $1 AND $2 ORDER BY data DESC`
	return r.list(query, inicio, fim)
}

// SearchByDescricao busca por trecho da descrição (sem diferenciar caixa).
func (r *CaixaRepo) SearchByDescricao(descricao string) ([]*entity.Caixa, error) {
	query := `SELECT ` + caixaColumns + `
		FROM caixa WHERE descricao ILIKE '%' || $1 || '%' ORDER BY data DESC`
	return r.list(query, descricao)
}

// UltimoSaldo devolve o saldo do lançamento mais recente, ou zero.
func (r *CaixaRepo) UltimoSaldo() (decimal.Decimal, error) {
	var saldo decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT saldo FROM caixa ORDER BY data DESC, id DESC LIMIT 1`).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("ultimo saldo: %w", err)
	}
	return saldo, nil
}

func (r *CaixaRepo) list(query string, args ...any) ([]*entity.Caixa, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list caixa: %w", err)
	}
	defer rows.Close()
	var list []*entity.Caixa
	for rows.Next() {
		c, err := scanCaixa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan caixa: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCaixa(row pgx.Row) (*entity.Caixa, error) {
	var c entity.Caixa
	err := row.Scan(&c.ID, &c.Descricao, &c.EntradaOuSaida, &c.Valor, &c.Saldo, &c.Data, &c.Observacoes)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
