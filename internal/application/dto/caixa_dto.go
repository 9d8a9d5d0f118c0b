package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCaixaRequest entrada para lançar uma movimentação no caixa.
// O saldo resultante é responsabilidade de quem lança; não há recomputo.
type CreateCaixaRequest struct {
	Descricao      string          `json:"descricao" validate:"required,max=255"`
	EntradaOuSaida string          `json:"entradaOuSaida" validate:"required,oneof=entrada saida"`
	Valor          decimal.Decimal `json:"valor" validate:"required"`
	Saldo          decimal.Decimal `json:"saldo" validate:"required"`
	Observacoes    string          `json:"observacoes" validate:"omitempty,max=500"`
}

// CaixaResponse saída de um lançamento do caixa.
type CaixaResponse struct {
	ID             string          `json:"id"`
	Descricao      string          `json:"descricao"`
	EntradaOuSaida string          `json:"entradaOuSaida"`
	Valor          decimal.Decimal `json:"valor"`
	Saldo          decimal.Decimal `json:"saldo"`
	Data           time.Time       `json:"data"`
	Observacoes    string          `json:"observacoes"`
}

// SaldoResponse saldo corrente do caixa (saldo do último lançamento).
type SaldoResponse struct {
	Saldo decimal.Decimal `json:"saldo"`
}
