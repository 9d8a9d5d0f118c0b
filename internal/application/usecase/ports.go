package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

// VendaTxRunner executa o callback com repositórios atados a uma mesma
// transação; o fluxo de venda precisa de baixa de estoque, itens e caixa
// atômicos.
type VendaTxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
		caixaRepo repository.CaixaRepository,
	) error) error
}

// ReciboItem linha do recibo de venda, já com o nome do produto resolvido.
type ReciboItem struct {
	NomeProduto   string
	Quantidade    int
	PrecoUnitario decimal.Decimal
	DescontoItem  decimal.Decimal
	Subtotal      decimal.Decimal
}

// ReciboPDFGenerator gera o recibo de uma venda em PDF.
type ReciboPDFGenerator interface {
	GerarReciboPDF(venda *entity.Venda, cliente *entity.Cliente, itens []ReciboItem) ([]byte, error)
}
