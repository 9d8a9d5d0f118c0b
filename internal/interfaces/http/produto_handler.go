package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
)

// ProdutoHandler trata as requisições HTTP de produtos e estoque (protegido).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Criar POST /api/produtos
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome é obrigatório"})
	}
	produto, err := h.uc.Criar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(produto)
}

// ListarAtivos GET /api/produtos
func (h *ProdutoHandler) ListarAtivos(c *fiber.Ctx) error {
	list, err := h.uc.ListarAtivos()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarTodos GET /api/produtos/todos
func (h *ProdutoHandler) ListarTodos(c *fiber.Ctx) error {
	list, err := h.uc.ListarTodos()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// BuscarPorNome GET /api/produtos/buscar?nome=
func (h *ProdutoHandler) BuscarPorNome(c *fiber.Ctx) error {
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

// ListarPorCategoria GET /api/produtos/categoria/:categoria
func (h *ProdutoHandler) ListarPorCategoria(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorCategoria(c.Params("categoria"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarPorMarca GET /api/produtos/marca/:marca
func (h *ProdutoHandler) ListarPorMarca(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorMarca(c.Params("marca"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// BuscarPorCodigoBarras GET /api/produtos/codigo-barras/:codigo
func (h *ProdutoHandler) BuscarPorCodigoBarras(c *fiber.Ctx) error {
	produto, err := h.uc.BuscarPorCodigoBarras(c.Params("codigo"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(produto)
}

// ListarEstoqueBaixo GET /api/produtos/estoque-baixo
func (h *ProdutoHandler) ListarEstoqueBaixo(c *fiber.Ctx) error {
	list, err := h.uc.ListarEstoqueBaixo()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarCategorias GET /api/produtos/categorias
func (h *ProdutoHandler) ListarCategorias(c *fiber.Ctx) error {
	list, err := h.uc.ListarCategorias()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarMarcas GET /api/produtos/marcas
func (h *ProdutoHandler) ListarMarcas(c *fiber.Ctx) error {
	list, err := h.uc.ListarMarcas()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// Estatisticas GET /api/produtos/estatisticas
func (h *ProdutoHandler) Estatisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estatisticas()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID GET /api/produtos/:id
func (h *ProdutoHandler) BuscarPorID(c *fiber.Ctx) error {
	produto, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(produto)
}

// Atualizar PUT /api/produtos/:id
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	produto, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(produto)
}

// AtualizarEstoque PUT /api/produtos/:id/estoque?quantidade=
func (h *ProdutoHandler) AtualizarEstoque(c *fiber.Ctx) error {
	quantidade, err := strconv.Atoi(c.Query("quantidade"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro quantidade é obrigatório e numérico"})
	}
	if err := h.uc.AtualizarEstoque(c.Params("id"), quantidade); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Ativar PUT /api/produtos/:id/ativar
func (h *ProdutoHandler) Ativar(c *fiber.Ctx) error {
	if err := h.uc.Ativar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Desativar PUT /api/produtos/:id/desativar
func (h *ProdutoHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Remover DELETE /api/produtos/:id
func (h *ProdutoHandler) Remover(c *fiber.Ctx) error {
	if err := h.uc.Remover(c.Params("id")); err != nil {
		return respondErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
