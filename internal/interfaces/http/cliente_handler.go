package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
)

// ClienteHandler trata as requisições HTTP de clientes (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Criar POST /api/clientes
func (h *ClienteHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	cliente, err := h.uc.Criar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// ListarAtivos GET /api/clientes
func (h *ClienteHandler) ListarAtivos(c *fiber.Ctx) error {
	list, err := h.uc.ListarAtivos()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarTodos GET /api/clientes/todos
func (h *ClienteHandler) ListarTodos(c *fiber.Ctx) error {
	list, err := h.uc.ListarTodos()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// BuscarPorNome GET /api/clientes/buscar?nome=
func (h *ClienteHandler) BuscarPorNome(c *fiber.Ctx) error {
	nome := c.Query("nome")
	if nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro nome é obrigatório"})
	}
	list, err := h.uc.BuscarPorNome(nome)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// BuscarPorCPF GET /api/clientes/cpf/:cpf
func (h *ClienteHandler) BuscarPorCPF(c *fiber.Ctx) error {
	cliente, err := h.uc.BuscarPorCPF(c.Params("cpf"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(cliente)
}

// Estatisticas GET /api/clientes/estatisticas
func (h *ClienteHandler) Estatisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estatisticas()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID GET /api/clientes/:id
func (h *ClienteHandler) BuscarPorID(c *fiber.Ctx) error {
	cliente, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(cliente)
}

// Atualizar PUT /api/clientes/:id
func (h *ClienteHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	cliente, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(cliente)
}

// Ativar PUT /api/clientes/:id/ativar
func (h *ClienteHandler) Ativar(c *fiber.Ctx) error {
	if err := h.uc.Ativar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Desativar PUT /api/clientes/:id/desativar
func (h *ClienteHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Remover DELETE /api/clientes/:id
func (h *ClienteHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
