package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direções de movimentação do caixa.
const (
	CaixaEntrada = "entrada"
	CaixaSaida   = "saida"
)

// Caixa é um lançamento do livro caixa: valor movimentado e saldo resultante.
// O saldo é informado por quem lança; não há recomputo entre lançamentos.
type Caixa struct {
	ID             string
	Descricao      string
	EntradaOuSaida string
	Valor          decimal.Decimal
	Saldo          decimal.Decimal
	Data           time.Time
	Observacoes    string
}
