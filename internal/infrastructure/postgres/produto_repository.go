package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColumns = `id, nome, descricao, categoria, tamanho, cor, preco, preco_custo,
		quantidade_estoque, estoque_minimo, codigo_barras, marca, ativo, data_cadastro, data_atualizacao`

// ProdutoRepo implementação do port ProdutoRepository sobre PostgreSQL (pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produto (id, nome, descricao, categoria, tamanho, cor, preco, preco_custo,
			quantidade_estoque, estoque_minimo, codigo_barras, marca, ativo, data_cadastro, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.Categoria, p.Tamanho, p.Cor, p.Preco, p.PrecoCusto,
		p.QuantidadeEstoque, p.EstoqueMinimo, nullIfEmpty(p.CodigoBarras), p.Marca,
		p.Ativo, p.DataCadastro, p.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto pelo ID (ativo ou inativo).
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produto WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto")
}

// GetByIDForUpdate obtém o produto travando a linha (SELECT ... FOR UPDATE).
// Usado dentro da transação de venda para serializar a baixa de estoque.
func (r *ProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produto WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto for update")
}

// GetByCodigoBarras obtém um produto ativo pelo código de barras.
func (r *ProdutoRepo) GetByCodigoBarras(codigo string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produto WHERE codigo_barras = $1 AND ativo = TRUE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo), "get produto por codigo de barras")
}

// ListAtivos lista os produtos ativos ordenados por nome.
func (r *ProdutoRepo) ListAtivos() ([]*entity.Produto, error) {
	return r.list(`SELECT ` + produtoColumns + ` FROM produto WHERE ativo = TRUE ORDER BY nome`)
}

// ListTodos lista todos os produtos ordenados por nome.
func (r *ProdutoRepo) ListTodos() ([]*entity.Produto, error) {
	return r.list(`SELECT ` + produtoColumns + ` FROM produto ORDER BY nome`)
}

// SearchByNome busca por nome sem diferenciar caixa nem acento; o termo já
// chega normalizado do usecase.
func (r *ProdutoRepo) SearchByNome(nome string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produto WHERE unaccent(nome) ILIKE '%' || $1 || '%' ORDER BY nome`
	return r.list(query, nome)
}

// ListByCategoria lista produtos ativos de uma categoria.
func (r *ProdutoRepo) ListByCategoria(categoria string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produto WHERE categoria = $1 AND ativo = TRUE ORDER BY nome`
	return r.list(query, categoria)
}

// ListByMarca lista produtos ativos de uma marca.
func (r *ProdutoRepo) ListByMarca(marca string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produto WHERE marca = $1 AND ativo = TRUE ORDER BY nome`
	return r.list(query, marca)
}

// ListEstoqueBaixo lista produtos ativos com quantidade ≤ estoque mínimo.
func (r *ProdutoRepo) ListEstoqueBaixo() ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produto WHERE ativo = TRUE AND quantidade_estoque <= estoque_minimo ORDER BY nome`
	return r.list(query)
}

// ListCategorias lista as categorias distintas dos produtos ativos.
func (r *ProdutoRepo) ListCategorias() ([]string, error) {
	return r.listStrings(`SELECT DISTINCT categoria FROM produto
		WHERE ativo = TRUE AND categoria <> '' ORDER BY categoria`)
}

// ListMarcas lista as marcas distintas dos produtos ativos.
func (r *ProdutoRepo) ListMarcas() ([]string, error) {
	return r.listStrings(`SELECT DISTINCT marca FROM produto
		WHERE ativo = TRUE AND marca <> '' ORDER BY marca`)
}

// Update atualiza os campos do produto, exceto a quantidade em estoque
// (sobrescrita e baixa têm operações próprias).
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produto SET nome = $2, descricao = $3, categoria = $4, tamanho = $5, cor = $6,
			preco = $7, preco_custo = $8, estoque_minimo = $9, codigo_barras = $10, marca = $11,
			ativo = $12, data_atualizacao = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.Categoria, p.Tamanho, p.Cor, p.Preco, p.PrecoCusto,
		p.EstoqueMinimo, nullIfEmpty(p.CodigoBarras), p.Marca, p.Ativo, p.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateEstoque grava a quantidade em estoque já decidida pelo usecase.
func (r *ProdutoRepo) UpdateEstoque(produtoID string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produto SET quantidade_estoque = $2, data_atualizacao = now() WHERE id = $1`,
		produtoID, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// Delete remove o produto em definitivo.
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// CountAtivos conta os produtos ativos.
func (r *ProdutoRepo) CountAtivos() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM produto WHERE ativo = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return total, nil
}

// CountEstoqueBaixo conta os produtos ativos com estoque baixo.
func (r *ProdutoRepo) CountEstoqueBaixo() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM produto WHERE ativo = TRUE AND quantidade_estoque <= estoque_minimo`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count estoque baixo: %w", err)
	}
	return total, nil
}

// SumValorEstoque soma preço × quantidade dos produtos ativos.
func (r *ProdutoRepo) SumValorEstoque() (decimal.Decimal, error) {
	var valor decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(preco * quantidade_estoque), 0) FROM produto WHERE ativo = TRUE`,
	).Scan(&valor)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum valor estoque: %w", err)
	}
	return valor, nil
}

func (r *ProdutoRepo) list(query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProdutoRepo) listStrings(query string) ([]string, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list strings: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan string: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ProdutoRepo) scanOne(row pgx.Row, op string) (*entity.Produto, error) {
	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var codigoBarras *string
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Categoria, &p.Tamanho, &p.Cor, &p.Preco, &p.PrecoCusto,
		&p.QuantidadeEstoque, &p.EstoqueMinimo, &codigoBarras, &p.Marca, &p.Ativo,
		&p.DataCadastro, &p.DataAtualizacao,
	)
	if err != nil {
		return nil, err
	}
	if codigoBarras != nil {
		p.CodigoBarras = *codigoBarras
	}
	return &p, nil
}
