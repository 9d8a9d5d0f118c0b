package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nome, email, telefone, cpf, endereco, cidade, estado, cep,
		data_nascimento, observacoes, ativo, data_cadastro, data_atualizacao`

// ClienteRepo implementação do port ClienteRepository sobre PostgreSQL (pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador de persistência de clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente. 23505 (cpf/email) vira ErrDuplicate.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO cliente (id, nome, email, telefone, cpf, endereco, cidade, estado, cep,
			data_nascimento, observacoes, ativo, data_cadastro, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, nullIfEmpty(c.Email), c.Telefone, nullIfEmpty(c.CPF), c.Endereco,
		c.Cidade, c.Estado, c.CEP, c.DataNascimento, c.Observacoes, c.Ativo,
		c.DataCadastro, c.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente pelo ID (ativo ou inativo).
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM cliente WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get cliente")
}

// GetByCPF obtém um cliente ativo pelo CPF.
func (r *ClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM cliente WHERE cpf = $1 AND ativo = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cpf), "get cliente por cpf")
}

// ListAtivos lista os clientes ativos ordenados por nome.
func (r *ClienteRepo) ListAtivos() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM cliente WHERE ativo = TRUE ORDER BY nome`
	return r.list(query)
}

// ListTodos lista todos os clientes ordenados por nome.
func (r *ClienteRepo) ListTodos() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM cliente ORDER BY nome`
	return r.list(query)
}

// SearchByNome busca por nome sem diferenciar caixa nem acento; o termo já
// chega normalizado (minúsculo, sem acento) do usecase.
func (r *ClienteRepo) SearchByNome(nome string) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + `
		FROM cliente WHERE unaccent(nome) ILIKE '%' || $1 || '%' ORDER BY nome`
	return r.list(query, nome)
}

// ExistsCPF verifica a existência do CPF entre ativos e inativos.
func (r *ClienteRepo) ExistsCPF(cpf string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM cliente WHERE cpf = $1)`, cpf).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists cpf: %w", err)
	}
	return existe, nil
}

// ExistsEmail verifica a existência do email entre ativos e inativos.
func (r *ClienteRepo) ExistsEmail(email string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM cliente WHERE email = $1)`, email).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists email: %w", err)
	}
	return existe, nil
}

// Update atualiza todos os campos mutáveis do cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE cliente SET nome = $2, email = $3, telefone = $4, cpf = $5, endereco = $6,
			cidade = $7, estado = $8, cep = $9, data_nascimento = $10, observacoes = $11,
			ativo = $12, data_atualizacao = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, nullIfEmpty(c.Email), c.Telefone, nullIfEmpty(c.CPF), c.Endereco,
		c.Cidade, c.Estado, c.CEP, c.DataNascimento, c.Observacoes, c.Ativo, c.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete remove o cliente em definitivo.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cliente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// CountAtivos conta os clientes ativos.
func (r *ClienteRepo) CountAtivos() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM cliente WHERE ativo = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

func (r *ClienteRepo) list(query string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ClienteRepo) scanOne(row pgx.Row, op string) (*entity.Cliente, error) {
	c, err := scanCliente(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var email, cpf *string
	err := row.Scan(
		&c.ID, &c.Nome, &email, &c.Telefone, &cpf, &c.Endereco, &c.Cidade, &c.Estado,
		&c.CEP, &c.DataNascimento, &c.Observacoes, &c.Ativo, &c.DataCadastro, &c.DataAtualizacao,
	)
	if err != nil {
		return nil, err
	}
	if email != nil {
		c.Email = *email
	}
	if cpf != nil {
		c.CPF = *cpf
	}
	return &c, nil
}

// nullIfEmpty mapeia string vazia para NULL, para não disparar a constraint
// única em campos opcionais (cpf/email).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
