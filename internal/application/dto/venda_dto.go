package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemVendaRequest uma linha da venda.
type CreateItemVendaRequest struct {
	ProdutoID     string          `json:"produtoId" validate:"required,uuid"`
	Quantidade    int             `json:"quantidade" validate:"required,min=1"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario" validate:"required"`
	DescontoItem  decimal.Decimal `json:"descontoItem"`
}

// CreateVendaRequest entrada para registrar uma venda.
// ValorTotal é informado pelo chamador; o valor final é derivado do desconto.
type CreateVendaRequest struct {
	ClienteID      *string                  `json:"clienteId" validate:"omitempty,uuid"`
	ValorTotal     decimal.Decimal          `json:"valorTotal" validate:"required"`
	Desconto       decimal.Decimal          `json:"desconto"`
	FormaPagamento string                   `json:"formaPagamento" validate:"required,oneof=dinheiro cartao_debito cartao_credito pix"`
	Status         string                   `json:"status" validate:"omitempty,oneof=pendente concluida"`
	Observacoes    string                   `json:"observacoes" validate:"omitempty,max=500"`
	Itens          []CreateItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
}

// ItemVendaResponse saída de uma linha da venda.
type ItemVendaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produtoId"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario"`
	DescontoItem  decimal.Decimal `json:"descontoItem"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// VendaResponse saída de uma venda com seus itens.
type VendaResponse struct {
	ID             string              `json:"id"`
	ClienteID      *string             `json:"clienteId,omitempty"`
	DataVenda      time.Time           `json:"dataVenda"`
	ValorTotal     decimal.Decimal     `json:"valorTotal"`
	Desconto       decimal.Decimal     `json:"desconto"`
	ValorFinal     decimal.Decimal     `json:"valorFinal"`
	FormaPagamento string              `json:"formaPagamento"`
	Status         string              `json:"status"`
	Observacoes    string              `json:"observacoes"`
	Itens          []ItemVendaResponse `json:"itens"`
}

// VendaEstatisticasResponse estatísticas de vendas.
type VendaEstatisticasResponse struct {
	TotalVendas      int64           `json:"totalVendas"`
	FaturamentoTotal decimal.Decimal `json:"faturamentoTotal"`
}
