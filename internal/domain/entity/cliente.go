package entity

import "time"

// Cliente representa um cliente da loja (cadastro para histórico de compras).
// CPF e email são únicos entre registros ativos e inativos.
type Cliente struct {
	ID              string
	Nome            string
	Email           string
	Telefone        string
	CPF             string
	Endereco        string
	Cidade          string
	Estado          string // UF com 2 letras
	CEP             string
	DataNascimento  *time.Time
	Observacoes     string
	Ativo           bool
	DataCadastro    time.Time
	DataAtualizacao time.Time
}
