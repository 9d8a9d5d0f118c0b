package entity

import "time"

// Usuario representa uma conta de acesso ao sistema (distinta de Cliente).
type Usuario struct {
	ID              string
	Email           string
	SenhaHash       string // hash bcrypt, nunca a senha em claro após persistir
	Nome            string
	Ativo           bool
	DataCadastro    time.Time
	DataAtualizacao time.Time
}
