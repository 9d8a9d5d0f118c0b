package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoPix           = "pix"
)

// Status de uma venda.
const (
	VendaPendente  = "pendente"
	VendaConcluida = "concluida"
	VendaCancelada = "cancelada"
)

// FormaPagamentoValida verifica se a forma de pagamento é uma das aceitas.
func FormaPagamentoValida(fp string) bool {
	switch fp {
	case PagamentoDinheiro, PagamentoCartaoDebito, PagamentoCartaoCredito, PagamentoPix:
		return true
	}
	return false
}

// Venda registra uma venda e é dona exclusiva dos seus itens (cascade delete).
// ValorTotal é informado pelo chamador; apenas ValorFinal é derivado
// (total − desconto, sem piso em zero).
type Venda struct {
	ID             string
	ClienteID      *string
	DataVenda      time.Time
	ValorTotal     decimal.Decimal
	Desconto       decimal.Decimal
	ValorFinal     decimal.Decimal
	FormaPagamento string
	Status         string
	Observacoes    string
	Itens          []ItemVenda
}

// SetDesconto aplica o desconto da venda e recalcula o valor final.
func (v *Venda) SetDesconto(d decimal.Decimal) {
	v.Desconto = d
	v.CalcularValorFinal()
}

// SetValorTotal define o total informado e recalcula o valor final.
func (v *Venda) SetValorTotal(total decimal.Decimal) {
	v.ValorTotal = total
	v.CalcularValorFinal()
}

// CalcularValorFinal deriva valor_final = valor_total − desconto.
// Descontos acima do total deixam o valor negativo de propósito.
func (v *Venda) CalcularValorFinal() {
	v.ValorFinal = v.ValorTotal.Sub(v.Desconto)
}

// ItemVenda é uma linha de venda; referencia Venda e Produto por FK.
type ItemVenda struct {
	ID            string
	VendaID       string
	ProdutoID     string
	Quantidade    int
	PrecoUnitario decimal.Decimal
	DescontoItem  decimal.Decimal
	Subtotal      decimal.Decimal
}

// NovoItemVenda monta um item já com o subtotal calculado.
func NovoItemVenda(produtoID string, quantidade int, precoUnitario, descontoItem decimal.Decimal) ItemVenda {
	item := ItemVenda{
		ProdutoID:     produtoID,
		Quantidade:    quantidade,
		PrecoUnitario: precoUnitario,
		DescontoItem:  descontoItem,
	}
	item.CalcularSubtotal()
	return item
}

// SetQuantidade altera a quantidade e recalcula o subtotal.
func (i *ItemVenda) SetQuantidade(q int) {
	i.Quantidade = q
	i.CalcularSubtotal()
}

// SetPrecoUnitario altera o preço unitário e recalcula o subtotal.
func (i *ItemVenda) SetPrecoUnitario(p decimal.Decimal) {
	i.PrecoUnitario = p
	i.CalcularSubtotal()
}

// SetDescontoItem altera o desconto do item e recalcula o subtotal.
func (i *ItemVenda) SetDescontoItem(d decimal.Decimal) {
	i.DescontoItem = d
	i.CalcularSubtotal()
}

// CalcularSubtotal deriva subtotal = preço × quantidade − desconto, sem clamp.
func (i *ItemVenda) CalcularSubtotal() {
	bruto := i.PrecoUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
	i.Subtotal = bruto.Sub(i.DescontoItem)
}
