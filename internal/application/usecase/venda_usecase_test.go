package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
)

type vendaFixture struct {
	uc          *usecase.VendaUseCase
	clienteRepo *fakeClienteRepo
	produtoRepo *fakeProdutoRepo
	vendaRepo   *fakeVendaRepo
	caixaRepo   *fakeCaixaRepo
	pdf         *fakeReciboPDF
}

func newVendaFixture() *vendaFixture {
	f := &vendaFixture{
		clienteRepo: newFakeClienteRepo(),
		produtoRepo: newFakeProdutoRepo(),
		vendaRepo:   newFakeVendaRepo(),
		caixaRepo:   newFakeCaixaRepo(),
		pdf:         &fakeReciboPDF{},
	}
	tx := &fakeTxRunner{
		produtoRepo: f.produtoRepo,
		vendaRepo:   f.vendaRepo,
		caixaRepo:   f.caixaRepo,
	}
	f.uc = usecase.NewVendaUseCase(tx, f.vendaRepo, f.clienteRepo, f.produtoRepo, f.pdf)
	return f
}

func (f *vendaFixture) addProduto(t *testing.T, nome string, qtd int) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, f.produtoRepo.Create(&entity.Produto{
		ID:                id,
		Nome:              nome,
		Preco:             decimal.RequireFromString("50.00"),
		QuantidadeEstoque: qtd,
		Ativo:             true,
	}))
	return id
}

func (f *vendaFixture) estoque(t *testing.T, produtoID string) int {
	t.Helper()
	p, err := f.produtoRepo.GetByID(produtoID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.QuantidadeEstoque
}

func pedido(produtoID string, qtd int, valorTotal string) dto.CreateVendaRequest {
	return dto.CreateVendaRequest{
		ValorTotal:     decimal.RequireFromString(valorTotal),
		FormaPagamento: entity.PagamentoPix,
		Itens: []dto.CreateItemVendaRequest{{
			ProdutoID:     produtoID,
			Quantidade:    qtd,
			PrecoUnitario: decimal.RequireFromString("50.00"),
		}},
	}
}

func TestVendaUseCase_Criar_BaixaEstoqueELancaCaixa(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	in := pedido(produtoID, 2, "100.00")
	in.Desconto = decimal.RequireFromString("10.00")
	out, err := f.uc.Criar(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, entity.VendaConcluida, out.Status, "status default é concluída")
	assert.True(t, decimal.RequireFromString("90.00").Equal(out.ValorFinal))
	require.Len(t, out.Itens, 1)
	assert.True(t, decimal.RequireFromString("100.00").Equal(out.Itens[0].Subtotal))

	assert.Equal(t, 8, f.estoque(t, produtoID), "estoque baixado pela quantidade vendida")

	entradas, err := f.caixaRepo.ListByTipo(entity.CaixaEntrada)
	require.NoError(t, err)
	require.Len(t, entradas, 1, "venda concluída lança entrada no caixa")
	assert.True(t, decimal.RequireFromString("90.00").Equal(entradas[0].Valor))
	assert.True(t, decimal.RequireFromString("90.00").Equal(entradas[0].Saldo), "saldo parte de zero")
}

func TestVendaUseCase_Criar_Pendente_NaoLancaCaixa(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	in := pedido(produtoID, 1, "50.00")
	in.Status = entity.VendaPendente
	out, err := f.uc.Criar(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.VendaPendente, out.Status)

	assert.Equal(t, 9, f.estoque(t, produtoID), "pendente também reserva o estoque")
	lancamentos, err := f.caixaRepo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, lancamentos)
}

func TestVendaUseCase_Criar_EstoqueInsuficiente(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 2)

	_, err := f.uc.Criar(context.Background(), pedido(produtoID, 3, "150.00"))
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.Equal(t, 2, f.estoque(t, produtoID), "guarda rejeita antes de persistir a baixa")
}

func TestVendaUseCase_Criar_Validacoes(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	in := pedido(produtoID, 1, "50.00")
	in.FormaPagamento = "cheque"
	_, err := f.uc.Criar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "forma de pagamento desconhecida")

	in = pedido(produtoID, 1, "50.00")
	in.Itens = nil
	_, err = f.uc.Criar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venda sem itens")

	in = pedido(produtoID, 0, "50.00")
	_, err = f.uc.Criar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade menor que 1")

	in = pedido(produtoID, 1, "50.00")
	in.Desconto = decimal.RequireFromString("-5.00")
	_, err = f.uc.Criar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "desconto negativo")
}

func TestVendaUseCase_Criar_DescontoMaiorQueTotal_NaoLancaCaixa(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	in := pedido(produtoID, 2, "100.00")
	in.Desconto = decimal.RequireFromString("150.00")
	out, err := f.uc.Criar(context.Background(), in)
	require.NoError(t, err, "desconto acima do total é aceito, sem clamp")

	assert.True(t, decimal.RequireFromString("-50.00").Equal(out.ValorFinal))
	assert.Equal(t, 8, f.estoque(t, produtoID), "a baixa de estoque acontece normalmente")

	lancamentos, err := f.caixaRepo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, lancamentos, "valor final ≤ 0 não movimenta o caixa")
}

func TestVendaUseCase_Cancelar_ValorFinalZero_NaoLancaSaida(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	in := pedido(produtoID, 1, "50.00")
	in.Desconto = decimal.RequireFromString("50.00")
	out, err := f.uc.Criar(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.ValorFinal.IsZero())

	_, err = f.uc.Cancelar(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, f.estoque(t, produtoID), "estorno de estoque independe do caixa")

	lancamentos, err := f.caixaRepo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, lancamentos, "sem entrada na conclusão, sem saída no cancelamento")
}

func TestVendaUseCase_Criar_ClienteInexistente(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	clienteID := uuid.New().String()
	in := pedido(produtoID, 1, "50.00")
	in.ClienteID = &clienteID
	_, err := f.uc.Criar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVendaUseCase_Cancelar_EstornaEstoqueELancaSaida(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	out, err := f.uc.Criar(context.Background(), pedido(produtoID, 4, "200.00"))
	require.NoError(t, err)
	require.Equal(t, 6, f.estoque(t, produtoID))

	cancelada, err := f.uc.Cancelar(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VendaCancelada, cancelada.Status)
	assert.Equal(t, 10, f.estoque(t, produtoID), "cancelamento devolve o estoque")

	saidas, err := f.caixaRepo.ListByTipo(entity.CaixaSaida)
	require.NoError(t, err)
	require.Len(t, saidas, 1)
	assert.True(t, decimal.RequireFromString("200.00").Equal(saidas[0].Valor))

	saldo, err := f.caixaRepo.UltimoSaldo()
	require.NoError(t, err)
	assert.True(t, saldo.IsZero(), "entrada e saída da mesma venda se anulam")
}

func TestVendaUseCase_Cancelar_DuasVezesRejeitado(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	out, err := f.uc.Criar(context.Background(), pedido(produtoID, 4, "200.00"))
	require.NoError(t, err)

	_, err = f.uc.Cancelar(context.Background(), out.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancelar(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrVendaCancelada, "segundo cancelamento não estorna em dobro")
	assert.Equal(t, 10, f.estoque(t, produtoID))
}

func TestVendaUseCase_Cancelar_PendenteNaoMexeNoCaixa(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	in := pedido(produtoID, 2, "100.00")
	in.Status = entity.VendaPendente
	out, err := f.uc.Criar(context.Background(), in)
	require.NoError(t, err)

	_, err = f.uc.Cancelar(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, f.estoque(t, produtoID))

	lancamentos, err := f.caixaRepo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, lancamentos, "pendente nunca tocou o caixa, cancelar também não")
}

func TestVendaUseCase_Estatisticas_SoConcluidasFaturam(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 20)

	_, err := f.uc.Criar(context.Background(), pedido(produtoID, 1, "50.00"))
	require.NoError(t, err)
	out, err := f.uc.Criar(context.Background(), pedido(produtoID, 1, "50.00"))
	require.NoError(t, err)
	_, err = f.uc.Cancelar(context.Background(), out.ID)
	require.NoError(t, err)

	stats, err := f.uc.Estatisticas()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVendas)
	assert.True(t, decimal.RequireFromString("50.00").Equal(stats.FaturamentoTotal),
		"cancelada sai do faturamento")
}

func TestVendaUseCase_Recibo_GeraPDF(t *testing.T) {
	f := newVendaFixture()
	produtoID := f.addProduto(t, "Camiseta básica", 10)

	out, err := f.uc.Criar(context.Background(), pedido(produtoID, 1, "50.00"))
	require.NoError(t, err)

	pdf, err := f.uc.Recibo(out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, f.pdf.chamadas)
}

func TestVendaUseCase_Recibo_VendaInexistente(t *testing.T) {
	f := newVendaFixture()
	_, err := f.uc.Recibo(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
