package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
)

func novaCliente(t *testing.T, uc *usecase.ClienteUseCase, nome, cpf, email string) *dto.ClienteResponse {
	t.Helper()
	out, err := uc.Criar(dto.CreateClienteRequest{Nome: nome, CPF: cpf, Email: email})
	require.NoError(t, err)
	return out
}

func TestClienteUseCase_Criar_CPFDuplicado(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	novaCliente(t, uc, "Maria Silva", "111.222.333-44", "maria@example.com")

	_, err := uc.Criar(dto.CreateClienteRequest{Nome: "Outra Maria", CPF: "111.222.333-44"})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestClienteUseCase_Criar_EmailDuplicado(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	novaCliente(t, uc, "Maria Silva", "111.222.333-44", "maria@example.com")

	_, err := uc.Criar(dto.CreateClienteRequest{Nome: "Joana", Email: "maria@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// CPF de cliente desativado continua bloqueando novos cadastros.
func TestClienteUseCase_CPFDeInativoAindaConflita(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := usecase.NewClienteUseCase(repo)
	c := novaCliente(t, uc, "Maria Silva", "111.222.333-44", "")
	require.NoError(t, uc.Desativar(c.ID))

	_, err := uc.Criar(dto.CreateClienteRequest{Nome: "Nova Maria", CPF: "111.222.333-44"})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestClienteUseCase_DesativarAtivar_PreservaDemaisCampos(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	c := novaCliente(t, uc, "Maria Silva", "111.222.333-44", "maria@example.com")

	require.NoError(t, uc.Desativar(c.ID))
	inativo, err := uc.BuscarPorID(c.ID)
	require.NoError(t, err)
	assert.False(t, inativo.Ativo)
	assert.Equal(t, c.Nome, inativo.Nome)
	assert.Equal(t, c.CPF, inativo.CPF)
	assert.Equal(t, c.Email, inativo.Email)

	require.NoError(t, uc.Ativar(c.ID))
	ativo, err := uc.BuscarPorID(c.ID)
	require.NoError(t, err)
	assert.True(t, ativo.Ativo)
	assert.Equal(t, c.Nome, ativo.Nome)
}

func TestClienteUseCase_Desativar_SomeDasListagensAtivas(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	c := novaCliente(t, uc, "Maria Silva", "", "")
	novaCliente(t, uc, "Ana Souza", "", "")

	require.NoError(t, uc.Desativar(c.ID))

	ativos, err := uc.ListarAtivos()
	require.NoError(t, err)
	assert.Len(t, ativos, 1)
	assert.Equal(t, "Ana Souza", ativos[0].Nome)

	todos, err := uc.ListarTodos()
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestClienteUseCase_Atualizar_Parcial(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	c := novaCliente(t, uc, "Maria Silva", "111.222.333-44", "maria@example.com")

	telefone := "(11) 99999-0000"
	out, err := uc.Atualizar(c.ID, dto.UpdateClienteRequest{Telefone: &telefone})
	require.NoError(t, err)
	assert.Equal(t, telefone, out.Telefone)
	assert.Equal(t, "Maria Silva", out.Nome, "campos não enviados são mantidos")
	assert.Equal(t, "111.222.333-44", out.CPF)
}

func TestClienteUseCase_Atualizar_MudancaDeCPFConflita(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	novaCliente(t, uc, "Maria Silva", "111.222.333-44", "")
	c2 := novaCliente(t, uc, "Ana Souza", "555.666.777-88", "")

	cpf := "111.222.333-44"
	_, err := uc.Atualizar(c2.ID, dto.UpdateClienteRequest{CPF: &cpf})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestClienteUseCase_BuscarPorID_NaoEncontrado(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	_, err := uc.BuscarPorID("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteUseCase_Estatisticas(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	novaCliente(t, uc, "Maria Silva", "", "")
	c := novaCliente(t, uc, "Ana Souza", "", "")
	require.NoError(t, uc.Desativar(c.ID))

	out, err := uc.Estatisticas()
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.TotalClientes, "conta apenas ativos")
}
