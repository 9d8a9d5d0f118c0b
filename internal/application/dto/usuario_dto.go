package dto

import "time"

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// CadastroRequest entrada do cadastro de conta (a senha é hasheada no usecase).
type CadastroRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
	Nome  string `json:"nome" validate:"omitempty,max=100"`
}

// UsuarioResponse saída de uma conta (nunca inclui a senha).
type UsuarioResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Nome            string    `json:"nome"`
	Ativo           bool      `json:"ativo"`
	DataCadastro    time.Time `json:"dataCadastro"`
	DataAtualizacao time.Time `json:"dataAtualizacao"`
}

// LoginResponse saída do login e do cadastro (token + usuário em caso de sucesso).
type LoginResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Token   string           `json:"token,omitempty"`
	User    *UsuarioResponse `json:"user,omitempty"`
}
