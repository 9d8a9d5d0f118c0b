package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para cadastrar um produto.
type CreateProdutoRequest struct {
	Nome              string          `json:"nome" validate:"required,min=1,max=100"`
	Descricao         string          `json:"descricao" validate:"omitempty,max=500"`
	Categoria         string          `json:"categoria" validate:"omitempty,max=50"`
	Tamanho           string          `json:"tamanho" validate:"omitempty,max=10"`
	Cor               string          `json:"cor" validate:"omitempty,max=30"`
	Preco             decimal.Decimal `json:"preco" validate:"required"`
	PrecoCusto        decimal.Decimal `json:"precoCusto"`
	QuantidadeEstoque int             `json:"quantidadeEstoque" validate:"min=0"`
	EstoqueMinimo     int             `json:"estoqueMinimo" validate:"min=0"`
	CodigoBarras      string          `json:"codigoBarras" validate:"omitempty,max=50"`
	Marca             string          `json:"marca" validate:"omitempty,max=50"`
}

// UpdateProdutoRequest entrada para atualização parcial. Estoque não entra
// aqui; tem rota própria (PUT /produtos/{id}/estoque).
type UpdateProdutoRequest struct {
	Nome          *string          `json:"nome"`
	Descricao     *string          `json:"descricao"`
	Categoria     *string          `json:"categoria"`
	Tamanho       *string          `json:"tamanho"`
	Cor           *string          `json:"cor"`
	Preco         *decimal.Decimal `json:"preco"`
	PrecoCusto    *decimal.Decimal `json:"precoCusto"`
	EstoqueMinimo *int             `json:"estoqueMinimo"`
	CodigoBarras  *string          `json:"codigoBarras"`
	Marca         *string          `json:"marca"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID                string          `json:"id"`
	Nome              string          `json:"nome"`
	Descricao         string          `json:"descricao"`
	Categoria         string          `json:"categoria"`
	Tamanho           string          `json:"tamanho"`
	Cor               string          `json:"cor"`
	Preco             decimal.Decimal `json:"preco"`
	PrecoCusto        decimal.Decimal `json:"precoCusto"`
	QuantidadeEstoque int             `json:"quantidadeEstoque"`
	EstoqueMinimo     int             `json:"estoqueMinimo"`
	EstoqueBaixo      bool            `json:"estoqueBaixo"`
	CodigoBarras      string          `json:"codigoBarras"`
	Marca             string          `json:"marca"`
	Ativo             bool            `json:"ativo"`
	DataCadastro      time.Time       `json:"dataCadastro"`
	DataAtualizacao   time.Time       `json:"dataAtualizacao"`
}

// ProdutoEstatisticasResponse estatísticas do catálogo e do estoque.
type ProdutoEstatisticasResponse struct {
	TotalProdutos        int64           `json:"totalProdutos"`
	ValorTotalEstoque    decimal.Decimal `json:"valorTotalEstoque"`
	ProdutosEstoqueBaixo int64           `json:"produtosEstoqueBaixo"`
}
