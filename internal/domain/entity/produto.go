package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa uma peça do catálogo com seu estoque escalar.
// QuantidadeEstoque nunca fica negativa; a baixa passa pela guarda do usecase.
type Produto struct {
	ID                string
	Nome              string
	Descricao         string
	Categoria         string
	Tamanho           string
	Cor               string
	Preco             decimal.Decimal // preço de venda
	PrecoCusto        decimal.Decimal
	QuantidadeEstoque int
	EstoqueMinimo     int
	CodigoBarras      string
	Marca             string
	Ativo             bool
	DataCadastro      time.Time
	DataAtualizacao   time.Time
}

// EstoqueBaixo indica se a quantidade caiu até o limite mínimo configurado.
func (p *Produto) EstoqueBaixo() bool {
	return p.QuantidadeEstoque <= p.EstoqueMinimo
}

// ValorEstoque devolve preço × quantidade, usado nas estatísticas.
func (p *Produto) ValorEstoque() decimal.Decimal {
	return p.Preco.Mul(decimal.NewFromInt(int64(p.QuantidadeEstoque)))
}
