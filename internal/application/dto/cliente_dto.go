package dto

import "time"

// CreateClienteRequest entrada para cadastrar um cliente.
type CreateClienteRequest struct {
	Nome           string     `json:"nome" validate:"required,min=1,max=100"`
	Email          string     `json:"email" validate:"omitempty,email"`
	Telefone       string     `json:"telefone" validate:"omitempty,max=20"`
	CPF            string     `json:"cpf" validate:"omitempty,max=14"`
	Endereco       string     `json:"endereco" validate:"omitempty,max=200"`
	Cidade         string     `json:"cidade" validate:"omitempty,max=50"`
	Estado         string     `json:"estado" validate:"omitempty,len=2"`
	CEP            string     `json:"cep" validate:"omitempty,max=10"`
	DataNascimento *time.Time `json:"dataNascimento"`
	Observacoes    string     `json:"observacoes" validate:"omitempty,max=500"`
}

// UpdateClienteRequest entrada para atualização parcial (campos nil são mantidos).
type UpdateClienteRequest struct {
	Nome           *string    `json:"nome"`
	Email          *string    `json:"email"`
	Telefone       *string    `json:"telefone"`
	CPF            *string    `json:"cpf"`
	Endereco       *string    `json:"endereco"`
	Cidade         *string    `json:"cidade"`
	Estado         *string    `json:"estado"`
	CEP            *string    `json:"cep"`
	DataNascimento *time.Time `json:"dataNascimento"`
	Observacoes    *string    `json:"observacoes"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID              string     `json:"id"`
	Nome            string     `json:"nome"`
	Email           string     `json:"email"`
	Telefone        string     `json:"telefone"`
	CPF             string     `json:"cpf"`
	Endereco        string     `json:"endereco"`
	Cidade          string     `json:"cidade"`
	Estado          string     `json:"estado"`
	CEP             string     `json:"cep"`
	DataNascimento  *time.Time `json:"dataNascimento,omitempty"`
	Observacoes     string     `json:"observacoes"`
	Ativo           bool       `json:"ativo"`
	DataCadastro    time.Time  `json:"dataCadastro"`
	DataAtualizacao time.Time  `json:"dataAtualizacao"`
}

// ClienteEstatisticasResponse estatísticas do cadastro de clientes.
type ClienteEstatisticasResponse struct {
	TotalClientes int64 `json:"totalClientes"`
}
