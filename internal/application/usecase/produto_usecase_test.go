package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
)

func novoProduto(t *testing.T, uc *usecase.ProdutoUseCase, nome string, qtd, minimo int) *dto.ProdutoResponse {
	t.Helper()
	out, err := uc.Criar(dto.CreateProdutoRequest{
		Nome:              nome,
		Preco:             decimal.RequireFromString("79.90"),
		QuantidadeEstoque: qtd,
		EstoqueMinimo:     minimo,
	})
	require.NoError(t, err)
	return out
}

func TestProdutoUseCase_Criar_PrecoInvalido(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	_, err := uc.Criar(dto.CreateProdutoRequest{Nome: "Vestido", Preco: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cenário de ponta a ponta da guarda de estoque: 10 em estoque com mínimo 3;
// baixa de 8 deixa 2 (estoque baixo); baixa de 3 é rejeitada e nada muda.
func TestProdutoUseCase_ReduzirEstoque_GuardaDeEstoque(t *testing.T) {
	repo := newFakeProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo)
	p := novoProduto(t, uc, "Camiseta básica", 10, 3)

	require.NoError(t, uc.ReduzirEstoque(p.ID, 8))

	apos, err := uc.BuscarPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, apos.QuantidadeEstoque)
	assert.True(t, apos.EstoqueBaixo, "2 ≤ 3 entra na faixa de estoque baixo")

	baixo, err := uc.ListarEstoqueBaixo()
	require.NoError(t, err)
	require.Len(t, baixo, 1)
	assert.Equal(t, p.ID, baixo[0].ID)

	err = uc.ReduzirEstoque(p.ID, 3)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	intacto, err := uc.BuscarPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, intacto.QuantidadeEstoque, "baixa rejeitada não altera o estoque")
}

func TestProdutoUseCase_ReduzirEstoque_QuantidadeInvalida(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	p := novoProduto(t, uc, "Calça jeans", 5, 1)

	assert.ErrorIs(t, uc.ReduzirEstoque(p.ID, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.ReduzirEstoque(p.ID, -2), domain.ErrInvalidInput)
}

func TestProdutoUseCase_AtualizarEstoque_Sobrescreve(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	p := novoProduto(t, uc, "Saia midi", 5, 1)

	// correção manual pode ir para qualquer valor ≥ 0, inclusive maior
	require.NoError(t, uc.AtualizarEstoque(p.ID, 42))
	apos, err := uc.BuscarPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, apos.QuantidadeEstoque)

	assert.ErrorIs(t, uc.AtualizarEstoque(p.ID, -1), domain.ErrInvalidInput)
}

func TestProdutoUseCase_Atualizar_NaoTocaEstoque(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	p := novoProduto(t, uc, "Blusa de frio", 7, 2)

	nome := "Blusa de lã"
	out, err := uc.Atualizar(p.ID, dto.UpdateProdutoRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, "Blusa de lã", out.Nome)
	assert.Equal(t, 7, out.QuantidadeEstoque, "atualização de cadastro preserva o estoque")
}

func TestProdutoUseCase_Estatisticas(t *testing.T) {
	repo := newFakeProdutoRepo()
	uc := usecase.NewProdutoUseCase(repo)
	novoProduto(t, uc, "Camiseta básica", 10, 3)
	p := novoProduto(t, uc, "Calça jeans", 1, 2)

	out, err := uc.Estatisticas()
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.TotalProdutos)
	assert.Equal(t, int64(1), out.ProdutosEstoqueBaixo)
	// 79.90 × (10 + 1)
	assert.True(t, decimal.RequireFromString("878.90").Equal(out.ValorTotalEstoque))

	require.NoError(t, uc.Desativar(p.ID))
	out, err = uc.Estatisticas()
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.TotalProdutos, "inativos ficam fora das estatísticas")
}

func TestProdutoUseCase_BuscarPorID_NaoEncontrado(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	_, err := uc.BuscarPorID("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
