package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
	"github.com/sabbatinimodas/backoffice-api/pkg/texto"
)

// ClienteUseCase casos de uso CRUD para clientes, com guarda de unicidade
// de CPF/email antes do insert.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Criar cadastra um cliente. CPF e email são checados contra todos os
// registros, ativos e inativos.
func (uc *ClienteUseCase) Criar(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.CPF != "" {
		existe, err := uc.repo.ExistsCPF(in.CPF)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrCPFAlreadyExists
		}
	}
	if in.Email != "" {
		existe, err := uc.repo.ExistsEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:              uuid.New().String(),
		Nome:            in.Nome,
		Email:           in.Email,
		Telefone:        in.Telefone,
		CPF:             in.CPF,
		Endereco:        in.Endereco,
		Cidade:          in.Cidade,
		Estado:          in.Estado,
		CEP:             in.CEP,
		DataNascimento:  in.DataNascimento,
		Observacoes:     in.Observacoes,
		Ativo:           true,
		DataCadastro:    now,
		DataAtualizacao: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Atualizar aplica uma atualização parcial. Mudança de CPF/email refaz a
// checagem de unicidade.
func (uc *ClienteUseCase) Atualizar(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.CPF != nil && *in.CPF != cliente.CPF && *in.CPF != "" {
		existe, err := uc.repo.ExistsCPF(*in.CPF)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrCPFAlreadyExists
		}
	}
	if in.Email != nil && *in.Email != cliente.Email && *in.Email != "" {
		existe, err := uc.repo.ExistsEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if in.Nome != nil {
		cliente.Nome = *in.Nome
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefone != nil {
		cliente.Telefone = *in.Telefone
	}
	if in.CPF != nil {
		cliente.CPF = *in.CPF
	}
	if in.Endereco != nil {
		cliente.Endereco = *in.Endereco
	}
	if in.Cidade != nil {
		cliente.Cidade = *in.Cidade
	}
	if in.Estado != nil {
		cliente.Estado = *in.Estado
	}
	if in.CEP != nil {
		cliente.CEP = *in.CEP
	}
	if in.DataNascimento != nil {
		cliente.DataNascimento = in.DataNascimento
	}
	if in.Observacoes != nil {
		cliente.Observacoes = *in.Observacoes
	}
	cliente.DataAtualizacao = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// BuscarPorID obtém um cliente pelo ID.
func (uc *ClienteUseCase) BuscarPorID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// BuscarPorCPF obtém um cliente ativo pelo CPF.
func (uc *ClienteUseCase) BuscarPorCPF(cpf string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByCPF(cpf)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// ListarAtivos lista clientes ativos ordenados por nome.
func (uc *ClienteUseCase) ListarAtivos() ([]dto.ClienteResponse, error) {
	list, err := uc.repo.ListAtivos()
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// ListarTodos lista todos os clientes, inclusive inativos.
func (uc *ClienteUseCase) ListarTodos() ([]dto.ClienteResponse, error) {
	list, err := uc.repo.ListTodos()
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// BuscarPorNome busca por nome, insensível a caixa e acento.
func (uc *ClienteUseCase) BuscarPorNome(nome string) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.SearchByNome(texto.Normalizar(nome))
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// Desativar marca o cliente como inativo (soft delete).
func (uc *ClienteUseCase) Desativar(id string) error {
	return uc.setAtivo(id, false)
}

// Ativar reativa um cliente desativado.
func (uc *ClienteUseCase) Ativar(id string) error {
	return uc.setAtivo(id, true)
}

func (uc *ClienteUseCase) setAtivo(id string, ativo bool) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	cliente.Ativo = ativo
	cliente.DataAtualizacao = time.Now()
	return uc.repo.Update(cliente)
}

// Remover exclui o registro em definitivo (hard delete).
func (uc *ClienteUseCase) Remover(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Estatisticas devolve os números do cadastro.
func (uc *ClienteUseCase) Estatisticas() (*dto.ClienteEstatisticasResponse, error) {
	total, err := uc.repo.CountAtivos()
	if err != nil {
		return nil, err
	}
	return &dto.ClienteEstatisticasResponse{TotalClientes: total}, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:              c.ID,
		Nome:            c.Nome,
		Email:           c.Email,
		Telefone:        c.Telefone,
		CPF:             c.CPF,
		Endereco:        c.Endereco,
		Cidade:          c.Cidade,
		Estado:          c.Estado,
		CEP:             c.CEP,
		DataNascimento:  c.DataNascimento,
		Observacoes:     c.Observacoes,
		Ativo:           c.Ativo,
		DataCadastro:    c.DataCadastro,
		DataAtualizacao: c.DataAtualizacao,
	}
}

func toClienteResponses(list []*entity.Cliente) []dto.ClienteResponse {
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items
}
