package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
	"github.com/sabbatinimodas/backoffice-api/pkg/texto"
)

// ProdutoUseCase casos de uso CRUD para produtos e as duas operações de
// estoque: sobrescrita manual e baixa com guarda.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Criar cadastra um produto.
func (uc *ProdutoUseCase) Criar(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Preco.LessThanOrEqual(decimal.Zero) || in.QuantidadeEstoque < 0 || in.EstoqueMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:                uuid.New().String(),
		Nome:              in.Nome,
		Descricao:         in.Descricao,
		Categoria:         in.Categoria,
		Tamanho:           in.Tamanho,
		Cor:               in.Cor,
		Preco:             in.Preco,
		PrecoCusto:        in.PrecoCusto,
		QuantidadeEstoque: in.QuantidadeEstoque,
		EstoqueMinimo:     in.EstoqueMinimo,
		CodigoBarras:      in.CodigoBarras,
		Marca:             in.Marca,
		Ativo:             true,
		DataCadastro:      now,
		DataAtualizacao:   now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// Atualizar aplica uma atualização parcial. Estoque não passa por aqui.
func (uc *ProdutoUseCase) Atualizar(id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		produto.Nome = *in.Nome
	}
	if in.Descricao != nil {
		produto.Descricao = *in.Descricao
	}
	if in.Categoria != nil {
		produto.Categoria = *in.Categoria
	}
	if in.Tamanho != nil {
		produto.Tamanho = *in.Tamanho
	}
	if in.Cor != nil {
		produto.Cor = *in.Cor
	}
	if in.Preco != nil {
		if in.Preco.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		produto.Preco = *in.Preco
	}
	if in.PrecoCusto != nil {
		produto.PrecoCusto = *in.PrecoCusto
	}
	if in.EstoqueMinimo != nil {
		if *in.EstoqueMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		produto.EstoqueMinimo = *in.EstoqueMinimo
	}
	if in.CodigoBarras != nil {
		produto.CodigoBarras = *in.CodigoBarras
	}
	if in.Marca != nil {
		produto.Marca = *in.Marca
	}
	produto.DataAtualizacao = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// BuscarPorID obtém um produto pelo ID.
func (uc *ProdutoUseCase) BuscarPorID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	return toProdutoResponse(produto), nil
}

// BuscarPorCodigoBarras obtém um produto ativo pelo código de barras.
func (uc *ProdutoUseCase) BuscarPorCodigoBarras(codigo string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByCodigoBarras(codigo)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	return toProdutoResponse(produto), nil
}

// ListarAtivos lista produtos ativos ordenados por nome.
func (uc *ProdutoUseCase) ListarAtivos() ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.ListAtivos()
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarTodos lista todos os produtos, inclusive inativos.
func (uc *ProdutoUseCase) ListarTodos() ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.ListTodos()
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// BuscarPorNome busca por nome, insensível a caixa e acento.
func (uc *ProdutoUseCase) BuscarPorNome(nome string) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.SearchByNome(texto.Normalizar(nome))
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarPorCategoria lista produtos ativos de uma categoria.
func (uc *ProdutoUseCase) ListarPorCategoria(categoria string) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.ListByCategoria(categoria)
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarPorMarca lista produtos ativos de uma marca.
func (uc *ProdutoUseCase) ListarPorMarca(marca string) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.ListByMarca(marca)
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarEstoqueBaixo lista produtos ativos com quantidade ≤ estoque mínimo.
func (uc *ProdutoUseCase) ListarEstoqueBaixo() ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.ListEstoqueBaixo()
	if err != nil {
		return nil, err
	}
	return toProdutoResponses(list), nil
}

// ListarCategorias lista as categorias distintas dos produtos ativos.
func (uc *ProdutoUseCase) ListarCategorias() ([]string, error) {
	return uc.repo.ListCategorias()
}

// ListarMarcas lista as marcas distintas dos produtos ativos.
func (uc *ProdutoUseCase) ListarMarcas() ([]string, error) {
	return uc.repo.ListMarcas()
}

// AtualizarEstoque sobrescreve a quantidade, sem guarda (correção manual).
func (uc *ProdutoUseCase) AtualizarEstoque(id string, quantidade int) error {
	if quantidade < 0 {
		return domain.ErrInvalidInput
	}
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateEstoque(id, quantidade)
}

// ReduzirEstoque dá baixa de quantidade com guarda: se o resultado ficar
// negativo, nada é persistido e ErrEstoqueInsuficiente é devolvido.
func (uc *ProdutoUseCase) ReduzirEstoque(id string, quantidade int) error {
	if quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	novaQtd := produto.QuantidadeEstoque - quantidade
	if novaQtd < 0 {
		return domain.ErrEstoqueInsuficiente
	}
	return uc.repo.UpdateEstoque(id, novaQtd)
}

// Desativar marca o produto como inativo (soft delete).
func (uc *ProdutoUseCase) Desativar(id string) error {
	return uc.setAtivo(id, false)
}

// Ativar reativa um produto desativado.
func (uc *ProdutoUseCase) Ativar(id string) error {
	return uc.setAtivo(id, true)
}

func (uc *ProdutoUseCase) setAtivo(id string, ativo bool) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	produto.Ativo = ativo
	produto.DataAtualizacao = time.Now()
	return uc.repo.Update(produto)
}

// Remover exclui o registro em definitivo (hard delete).
func (uc *ProdutoUseCase) Remover(id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Estatisticas devolve total de produtos ativos, valor do estoque e
// quantos estão com estoque baixo.
func (uc *ProdutoUseCase) Estatisticas() (*dto.ProdutoEstatisticasResponse, error) {
	total, err := uc.repo.CountAtivos()
	if err != nil {
		return nil, err
	}
	valor, err := uc.repo.SumValorEstoque()
	if err != nil {
		return nil, err
	}
	baixo, err := uc.repo.CountEstoqueBaixo()
	if err != nil {
		return nil, err
	}
	return &dto.ProdutoEstatisticasResponse{
		TotalProdutos:        total,
		ValorTotalEstoque:    valor,
		ProdutosEstoqueBaixo: baixo,
	}, nil
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:                p.ID,
		Nome:              p.Nome,
		Descricao:         p.Descricao,
		Categoria:         p.Categoria,
		Tamanho:           p.Tamanho,
		Cor:               p.Cor,
		Preco:             p.Preco,
		PrecoCusto:        p.PrecoCusto,
		QuantidadeEstoque: p.QuantidadeEstoque,
		EstoqueMinimo:     p.EstoqueMinimo,
		EstoqueBaixo:      p.EstoqueBaixo(),
		CodigoBarras:      p.CodigoBarras,
		Marca:             p.Marca,
		Ativo:             p.Ativo,
		DataCadastro:      p.DataCadastro,
		DataAtualizacao:   p.DataAtualizacao,
	}
}

func toProdutoResponses(list []*entity.Produto) []dto.ProdutoResponse {
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return items
}
