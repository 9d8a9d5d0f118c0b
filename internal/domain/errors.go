package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrCPFAlreadyExists    = errors.New("o CPF já está cadastrado")
	ErrEmailAlreadyExists  = errors.New("o email já está cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
	ErrVendaCancelada      = errors.New("a venda já está cancelada")
)
