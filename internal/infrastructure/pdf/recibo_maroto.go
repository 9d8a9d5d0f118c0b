// Package pdf implementa a geração do recibo de venda em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da loja  │  N° Recibo + Data                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + CPF + contato                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Produto | Preço Unit. | Desc. | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Valor total / Desconto / VALOR FINAL               │
//	│  FORMA DE PAGAMENTO + observações                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
)

const nomeLoja = "Sabbatini Modas"

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 127, Green: 29, Blue: 66}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formata números no padrão brasileiro (1.234,56).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReciboGenerator implementa usecase.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator constrói o gerador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GerarReciboPDF gera o PDF do recibo e devolve seus bytes. cliente pode ser
// nil (venda sem cliente identificado).
func (g *MarotoReciboGenerator) GerarReciboPDF(
	venda *entity.Venda,
	cliente *entity.Cliente,
	itens []usecase.ReciboItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venda", true).
		WithAuthor(nomeLoja, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(venda))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(venda))
	m.AddRows(rodapeRow(venda))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da loja (esq) e identificação do recibo (dir).
func headerRow(venda *entity.Venda) core.Row {
	data := venda.DataVenda.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nomeLoja, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Moda feminina e acessórios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(venda.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: dados do comprador, ou consumidor não identificado.
func clienteRow(cliente *entity.Cliente) core.Row {
	if cliente == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Consumidor não identificado", props.Text{
				Size: 9, Top: 6, Color: colorGray,
			}),
		))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(cliente.CPF, "—"),
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 5, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: uma linha por item da venda.
func tableItemRows(itens []usecase.ReciboItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(item.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				item.NomeProduto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatReal(item.PrecoUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatReal(item.DescontoItem),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatReal(item.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: bloco de totais alinhado à direita.
func totaisRow(venda *entity.Venda) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Valor total:"),
			label("Desconto:"),
			grandLabel("VALOR FINAL:"),
		),
		col.New(3).Add(
			value(formatReal(venda.ValorTotal)),
			value(formatReal(venda.Desconto)),
			grandValue(formatReal(venda.ValorFinal)),
		),
		col.New(3),
	)
}

// rodapeRow: forma de pagamento e observações da venda.
func rodapeRow(venda *entity.Venda) core.Row {
	texto := "Forma de pagamento: " + nomeFormaPagamento(venda.FormaPagamento)
	if venda.Observacoes != "" {
		texto += "   |   Obs.: " + venda.Observacoes
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(texto, props.Text{Size: 8, Top: 3, Color: colorGray}),
		text.New("Obrigado pela preferência!", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 8, Color: colorPrimary,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatReal formata o valor no padrão monetário brasileiro.
// Ex: 1234.5 → "R$ 1.234,50"
func formatReal(d decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", d.InexactFloat64())
}

func nomeFormaPagamento(forma string) string {
	switch forma {
	case entity.PagamentoDinheiro:
		return "Dinheiro"
	case entity.PagamentoCartaoDebito:
		return "Cartão de débito"
	case entity.PagamentoCartaoCredito:
		return "Cartão de crédito"
	case entity.PagamentoPix:
		return "PIX"
	default:
		return forma
	}
}
