package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

// Fakes em memória dos ports de repositório. Sem transação de verdade: o
// fakeTxRunner só repassa os próprios fakes ao callback.

// ──────────────────────────────────────────────────────────────────────────────
// Cliente
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	cp := *c
	f.clientes[c.ID] = &cp
	return nil
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.CPF == cpf && c.Ativo {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteRepo) ListAtivos() ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for _, c := range f.clientes {
		if c.Ativo {
			cp := *c
			list = append(list, &cp)
		}
	}
	sortClientes(list)
	return list, nil
}

func (f *fakeClienteRepo) ListTodos() ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for _, c := range f.clientes {
		cp := *c
		list = append(list, &cp)
	}
	sortClientes(list)
	return list, nil
}

func (f *fakeClienteRepo) SearchByNome(nome string) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for _, c := range f.clientes {
		if strings.Contains(strings.ToLower(c.Nome), nome) {
			cp := *c
			list = append(list, &cp)
		}
	}
	sortClientes(list)
	return list, nil
}

func (f *fakeClienteRepo) ExistsCPF(cpf string) (bool, error) {
	for _, c := range f.clientes {
		if c.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClienteRepo) ExistsEmail(email string) (bool, error) {
	for _, c := range f.clientes {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	cp := *c
	f.clientes[c.ID] = &cp
	return nil
}

func (f *fakeClienteRepo) Delete(id string) error {
	delete(f.clientes, id)
	return nil
}

func (f *fakeClienteRepo) CountAtivos() (int64, error) {
	var n int64
	for _, c := range f.clientes {
		if c.Ativo {
			n++
		}
	}
	return n, nil
}

func sortClientes(list []*entity.Cliente) {
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
}

var _ repository.ClienteRepository = (*fakeClienteRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Produto
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: make(map[string]*entity.Produto)}
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error {
	cp := *p
	f.produtos[p.ID] = &cp
	return nil
}

func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := f.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return f.GetByID(id)
}

func (f *fakeProdutoRepo) GetByCodigoBarras(codigo string) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.CodigoBarras == codigo && p.Ativo {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProdutoRepo) ListAtivos() ([]*entity.Produto, error) {
	return f.filter(func(p *entity.Produto) bool { return p.Ativo }), nil
}

func (f *fakeProdutoRepo) ListTodos() ([]*entity.Produto, error) {
	return f.filter(func(*entity.Produto) bool { return true }), nil
}

func (f *fakeProdutoRepo) SearchByNome(nome string) ([]*entity.Produto, error) {
	return f.filter(func(p *entity.Produto) bool {
		return strings.Contains(strings.ToLower(p.Nome), nome)
	}), nil
}

func (f *fakeProdutoRepo) ListByCategoria(categoria string) ([]*entity.Produto, error) {
	return f.filter(func(p *entity.Produto) bool { return p.Ativo && p.Categoria == categoria }), nil
}

func (f *fakeProdutoRepo) ListByMarca(marca string) ([]*entity.Produto, error) {
	return f.filter(func(p *entity.Produto) bool { return p.Ativo && p.Marca == marca }), nil
}

func (f *fakeProdutoRepo) ListEstoqueBaixo() ([]*entity.Produto, error) {
	return f.filter(func(p *entity.Produto) bool { return p.Ativo && p.EstoqueBaixo() }), nil
}

func (f *fakeProdutoRepo) ListCategorias() ([]string, error) {
	return f.distinct(func(p *entity.Produto) string { return p.Categoria }), nil
}

func (f *fakeProdutoRepo) ListMarcas() ([]string, error) {
	return f.distinct(func(p *entity.Produto) string { return p.Marca }), nil
}

func (f *fakeProdutoRepo) Update(p *entity.Produto) error {
	atual, ok := f.produtos[p.ID]
	cp := *p
	if ok {
		// o Update do adaptador real não toca a quantidade em estoque
		cp.QuantidadeEstoque = atual.QuantidadeEstoque
	}
	f.produtos[p.ID] = &cp
	return nil
}

func (f *fakeProdutoRepo) UpdateEstoque(produtoID string, quantidade int) error {
	if p, ok := f.produtos[produtoID]; ok {
		p.QuantidadeEstoque = quantidade
		p.DataAtualizacao = time.Now()
	}
	return nil
}

func (f *fakeProdutoRepo) Delete(id string) error {
	delete(f.produtos, id)
	return nil
}

func (f *fakeProdutoRepo) CountAtivos() (int64, error) {
	return int64(len(f.filter(func(p *entity.Produto) bool { return p.Ativo }))), nil
}

func (f *fakeProdutoRepo) CountEstoqueBaixo() (int64, error) {
	list, _ := f.ListEstoqueBaixo()
	return int64(len(list)), nil
}

func (f *fakeProdutoRepo) SumValorEstoque() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.produtos {
		if p.Ativo {
			total = total.Add(p.ValorEstoque())
		}
	}
	return total, nil
}

func (f *fakeProdutoRepo) filter(keep func(*entity.Produto) bool) []*entity.Produto {
	var list []*entity.Produto
	for _, p := range f.produtos {
		if keep(p) {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
	return list
}

func (f *fakeProdutoRepo) distinct(field func(*entity.Produto) string) []string {
	seen := make(map[string]bool)
	var list []string
	for _, p := range f.produtos {
		v := field(p)
		if p.Ativo && v != "" && !seen[v] {
			seen[v] = true
			list = append(list, v)
		}
	}
	sort.Strings(list)
	return list
}

var _ repository.ProdutoRepository = (*fakeProdutoRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Venda
// ──────────────────────────────────────────────────────────────────────────────

type fakeVendaRepo struct {
	vendas map[string]*entity.Venda
	itens  []entity.ItemVenda
}

func newFakeVendaRepo() *fakeVendaRepo {
	return &fakeVendaRepo{vendas: make(map[string]*entity.Venda)}
}

func (f *fakeVendaRepo) Create(v *entity.Venda) error {
	cp := *v
	cp.Itens = nil
	f.vendas[v.ID] = &cp
	return nil
}

func (f *fakeVendaRepo) CreateItem(item *entity.ItemVenda) error {
	f.itens = append(f.itens, *item)
	return nil
}

func (f *fakeVendaRepo) GetByID(id string) (*entity.Venda, error) {
	v, ok := f.vendas[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVendaRepo) ItensByVenda(vendaID string) ([]entity.ItemVenda, error) {
	var list []entity.ItemVenda
	for _, item := range f.itens {
		if item.VendaID == vendaID {
			list = append(list, item)
		}
	}
	return list, nil
}

func (f *fakeVendaRepo) ListAll() ([]*entity.Venda, error) {
	return f.filter(func(*entity.Venda) bool { return true }), nil
}

func (f *fakeVendaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Venda, error) {
	return f.filter(func(v *entity.Venda) bool {
		return !v.DataVenda.Before(inicio) && !v.DataVenda.After(fim)
	}), nil
}

func (f *fakeVendaRepo) ListByStatus(status string) ([]*entity.Venda, error) {
	return f.filter(func(v *entity.Venda) bool { return v.Status == status }), nil
}

func (f *fakeVendaRepo) ListByCliente(clienteID string) ([]*entity.Venda, error) {
	return f.filter(func(v *entity.Venda) bool {
		return v.ClienteID != nil && *v.ClienteID == clienteID
	}), nil
}

func (f *fakeVendaRepo) UpdateStatus(id, status string) error {
	if v, ok := f.vendas[id]; ok {
		v.Status = status
	}
	return nil
}

func (f *fakeVendaRepo) Count() (int64, error) {
	return int64(len(f.vendas)), nil
}

func (f *fakeVendaRepo) SumFaturamento() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range f.vendas {
		if v.Status == entity.VendaConcluida {
			total = total.Add(v.ValorFinal)
		}
	}
	return total, nil
}

func (f *fakeVendaRepo) filter(keep func(*entity.Venda) bool) []*entity.Venda {
	var list []*entity.Venda
	for _, v := range f.vendas {
		if keep(v) {
			cp := *v
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DataVenda.After(list[j].DataVenda) })
	return list
}

var _ repository.VendaRepository = (*fakeVendaRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Caixa
// ──────────────────────────────────────────────────────────────────────────────

type fakeCaixaRepo struct {
	lancamentos []*entity.Caixa
}

func newFakeCaixaRepo() *fakeCaixaRepo { return &fakeCaixaRepo{} }

func (f *fakeCaixaRepo) Create(c *entity.Caixa) error {
	cp := *c
	f.lancamentos = append(f.lancamentos, &cp)
	return nil
}

func (f *fakeCaixaRepo) GetByID(id string) (*entity.Caixa, error) {
	for _, c := range f.lancamentos {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCaixaRepo) ListAll() ([]*entity.Caixa, error) {
	return f.filter(func(*entity.Caixa) bool { return true }), nil
}

func (f *fakeCaixaRepo) ListByTipo(tipo string) ([]*entity.Caixa, error) {
	return f.filter(func(c *entity.Caixa) bool { return c.EntradaOuSaida == tipo }), nil
}

func (f *fakeCaixaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Caixa, error) {
	return f.filter(func(c *entity.Caixa) bool {
		return !c.Data.Before(inicio) && !c.Data.After(fim)
	}), nil
}

func (f *fakeCaixaRepo) SearchByDescricao(descricao string) ([]*entity.Caixa, error) {
	return f.filter(func(c *entity.Caixa) bool {
		return strings.Contains(strings.ToLower(c.Descricao), strings.ToLower(descricao))
	}), nil
}

func (f *fakeCaixaRepo) UltimoSaldo() (decimal.Decimal, error) {
	if len(f.lancamentos) == 0 {
		return decimal.Zero, nil
	}
	return f.lancamentos[len(f.lancamentos)-1].Saldo, nil
}

func (f *fakeCaixaRepo) filter(keep func(*entity.Caixa) bool) []*entity.Caixa {
	var list []*entity.Caixa
	for _, c := range f.lancamentos {
		if keep(c) {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list
}

var _ repository.CaixaRepository = (*fakeCaixaRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner e PDF
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	produtoRepo *fakeProdutoRepo
	vendaRepo   *fakeVendaRepo
	caixaRepo   *fakeCaixaRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
	caixaRepo repository.CaixaRepository,
) error) error {
	return fn(f.produtoRepo, f.vendaRepo, f.caixaRepo)
}

var _ usecase.VendaTxRunner = (*fakeTxRunner)(nil)

type fakeReciboPDF struct {
	chamadas int
}

func (f *fakeReciboPDF) GerarReciboPDF(*entity.Venda, *entity.Cliente, []usecase.ReciboItem) ([]byte, error) {
	f.chamadas++
	return []byte("%PDF-fake"), nil
}

var _ usecase.ReciboPDFGenerator = (*fakeReciboPDF)(nil)
