package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

// VendaUseCase registro, consulta, cancelamento e recibo de vendas.
// Criação e cancelamento rodam numa transação: itens, baixa/estorno de
// estoque e lançamento no caixa ou entram juntos ou não entram.
type VendaUseCase struct {
	tx          VendaTxRunner
	vendaRepo   repository.VendaRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	pdf         ReciboPDFGenerator
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(
	tx VendaTxRunner,
	vendaRepo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	pdf ReciboPDFGenerator,
) *VendaUseCase {
	return &VendaUseCase{tx: tx, vendaRepo: vendaRepo, clienteRepo: clienteRepo, produtoRepo: produtoRepo, pdf: pdf}
}

// Criar registra uma venda com seus itens. O valor total vem do chamador;
// o valor final é derivado (total − desconto). Cada item trava a linha do
// produto, passa pela guarda de estoque e dá a baixa. Venda concluída lança
// "entrada" no caixa com o novo saldo corrente.
func (uc *VendaUseCase) Criar(ctx context.Context, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	if len(in.Itens) == 0 || !entity.FormaPagamentoValida(in.FormaPagamento) {
		return nil, domain.ErrInvalidInput
	}
	if in.ValorTotal.LessThanOrEqual(decimal.Zero) || in.Desconto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.VendaConcluida
	}
	if status != entity.VendaPendente && status != entity.VendaConcluida {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Itens {
		if item.Quantidade < 1 || item.PrecoUnitario.LessThanOrEqual(decimal.Zero) || item.DescontoItem.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ClienteID != nil {
		cliente, err := uc.clienteRepo.GetByID(*in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
	}

	venda := &entity.Venda{
		ID:             uuid.New().String(),
		ClienteID:      in.ClienteID,
		DataVenda:      time.Now(),
		FormaPagamento: in.FormaPagamento,
		Status:         status,
		Observacoes:    in.Observacoes,
	}
	venda.SetValorTotal(in.ValorTotal)
	venda.SetDesconto(in.Desconto)

	err := uc.tx.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
		caixaRepo repository.CaixaRepository,
	) error {
		if err := vendaRepo.Create(venda); err != nil {
			return err
		}
		for _, it := range in.Itens {
			produto, err := produtoRepo.GetByIDForUpdate(it.ProdutoID)
			if err != nil {
				return err
			}
			if produto == nil {
				return domain.ErrNotFound
			}
			novaQtd := produto.QuantidadeEstoque - it.Quantidade
			if novaQtd < 0 {
				return domain.ErrEstoqueInsuficiente
			}
			if err := produtoRepo.UpdateEstoque(produto.ID, novaQtd); err != nil {
				return err
			}
			item := entity.NovoItemVenda(it.ProdutoID, it.Quantidade, it.PrecoUnitario, it.DescontoItem)
			item.ID = uuid.New().String()
			item.VendaID = venda.ID
			if err := vendaRepo.CreateItem(&item); err != nil {
				return err
			}
			venda.Itens = append(venda.Itens, item)
		}
		if venda.Status == entity.VendaConcluida {
			return lancarCaixa(caixaRepo, venda, entity.CaixaEntrada)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVendaResponse(venda), nil
}

// Cancelar estorna o estoque dos itens, marca a venda como cancelada e, se
// ela estava concluída, lança a "saida" correspondente no caixa. Cancelar
// duas vezes é rejeitado para não estornar estoque em dobro.
func (uc *VendaUseCase) Cancelar(ctx context.Context, id string) (*dto.VendaResponse, error) {
	var cancelada *entity.Venda
	err := uc.tx.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
		caixaRepo repository.CaixaRepository,
	) error {
		venda, err := vendaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if venda == nil {
			return domain.ErrNotFound
		}
		if venda.Status == entity.VendaCancelada {
			return domain.ErrVendaCancelada
		}
		itens, err := vendaRepo.ItensByVenda(id)
		if err != nil {
			return err
		}
		for _, item := range itens {
			produto, err := produtoRepo.GetByIDForUpdate(item.ProdutoID)
			if err != nil {
				return err
			}
			if produto == nil {
				continue // produto removido depois da venda; nada a estornar
			}
			if err := produtoRepo.UpdateEstoque(produto.ID, produto.QuantidadeEstoque+item.Quantidade); err != nil {
				return err
			}
		}
		if err := vendaRepo.UpdateStatus(id, entity.VendaCancelada); err != nil {
			return err
		}
		if venda.Status == entity.VendaConcluida {
			if err := lancarCaixa(caixaRepo, venda, entity.CaixaSaida); err != nil {
				return err
			}
		}
		venda.Status = entity.VendaCancelada
		venda.Itens = itens
		cancelada = venda
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toVendaResponse(cancelada), nil
}

// lancarCaixa grava a movimentação da venda informando o saldo resultante,
// lido do último lançamento dentro da mesma transação. Venda com valor final
// zero ou negativo não movimenta o caixa: todo lançamento tem valor > 0.
func lancarCaixa(caixaRepo repository.CaixaRepository, venda *entity.Venda, direcao string) error {
	if !venda.ValorFinal.IsPositive() {
		return nil
	}
	saldo, err := caixaRepo.UltimoSaldo()
	if err != nil {
		return err
	}
	descricao := "Venda " + venda.ID
	if direcao == entity.CaixaSaida {
		descricao = "Cancelamento da venda " + venda.ID
		saldo = saldo.Sub(venda.ValorFinal)
	} else {
		saldo = saldo.Add(venda.ValorFinal)
	}
	return caixaRepo.Create(&entity.Caixa{
		ID:             uuid.New().String(),
		Descricao:      descricao,
		EntradaOuSaida: direcao,
		Valor:          venda.ValorFinal,
		Saldo:          saldo,
		Data:           time.Now(),
	})
}

// BuscarPorID obtém uma venda com seus itens.
func (uc *VendaUseCase) BuscarPorID(id string) (*dto.VendaResponse, error) {
	venda, err := uc.carregarVenda(id)
	if err != nil {
		return nil, err
	}
	return toVendaResponse(venda), nil
}

func (uc *VendaUseCase) carregarVenda(id string) (*entity.Venda, error) {
	venda, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.vendaRepo.ItensByVenda(id)
	if err != nil {
		return nil, err
	}
	venda.Itens = itens
	return venda, nil
}

// Listar lista as vendas da mais recente para a mais antiga.
func (uc *VendaUseCase) Listar() ([]dto.VendaResponse, error) {
	list, err := uc.vendaRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toVendaResponses(list), nil
}

// ListarPorPeriodo lista as vendas de um intervalo de datas.
func (uc *VendaUseCase) ListarPorPeriodo(inicio, fim time.Time) ([]dto.VendaResponse, error) {
	list, err := uc.vendaRepo.ListByPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	return toVendaResponses(list), nil
}

// ListarPorStatus lista as vendas de um status.
func (uc *VendaUseCase) ListarPorStatus(status string) ([]dto.VendaResponse, error) {
	if status != entity.VendaPendente && status != entity.VendaConcluida && status != entity.VendaCancelada {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.vendaRepo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return toVendaResponses(list), nil
}

// ListarPorCliente lista as vendas de um cliente.
func (uc *VendaUseCase) ListarPorCliente(clienteID string) ([]dto.VendaResponse, error) {
	list, err := uc.vendaRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	return toVendaResponses(list), nil
}

// Estatisticas devolve o total de vendas e o faturamento das concluídas.
func (uc *VendaUseCase) Estatisticas() (*dto.VendaEstatisticasResponse, error) {
	total, err := uc.vendaRepo.Count()
	if err != nil {
		return nil, err
	}
	faturamento, err := uc.vendaRepo.SumFaturamento()
	if err != nil {
		return nil, err
	}
	return &dto.VendaEstatisticasResponse{TotalVendas: total, FaturamentoTotal: faturamento}, nil
}

// Recibo gera o recibo da venda em PDF.
func (uc *VendaUseCase) Recibo(id string) ([]byte, error) {
	venda, err := uc.carregarVenda(id)
	if err != nil {
		return nil, err
	}
	var cliente *entity.Cliente
	if venda.ClienteID != nil {
		cliente, err = uc.clienteRepo.GetByID(*venda.ClienteID)
		if err != nil {
			return nil, err
		}
	}
	itens := make([]ReciboItem, 0, len(venda.Itens))
	for _, item := range venda.Itens {
		nome := item.ProdutoID
		if produto, err := uc.produtoRepo.GetByID(item.ProdutoID); err == nil && produto != nil {
			nome = produto.Nome
		}
		itens = append(itens, ReciboItem{
			NomeProduto:   nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			DescontoItem:  item.DescontoItem,
			Subtotal:      item.Subtotal,
		})
	}
	return uc.pdf.GerarReciboPDF(venda, cliente, itens)
}

func toVendaResponse(v *entity.Venda) *dto.VendaResponse {
	if v == nil {
		return nil
	}
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		itens = append(itens, dto.ItemVendaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			DescontoItem:  item.DescontoItem,
			Subtotal:      item.Subtotal,
		})
	}
	return &dto.VendaResponse{
		ID:             v.ID,
		ClienteID:      v.ClienteID,
		DataVenda:      v.DataVenda,
		ValorTotal:     v.ValorTotal,
		Desconto:       v.Desconto,
		ValorFinal:     v.ValorFinal,
		FormaPagamento: v.FormaPagamento,
		Status:         v.Status,
		Observacoes:    v.Observacoes,
		Itens:          itens,
	}
}

func toVendaResponses(list []*entity.Venda) []dto.VendaResponse {
	items := make([]dto.VendaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendaResponse(v))
	}
	return items
}
