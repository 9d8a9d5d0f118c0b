package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
)

// CaixaHandler trata as requisições HTTP do livro caixa (protegido).
type CaixaHandler struct {
	uc *usecase.CaixaUseCase
}

// NewCaixaHandler constrói o handler.
func NewCaixaHandler(uc *usecase.CaixaUseCase) *CaixaHandler {
	return &CaixaHandler{uc: uc}
}

// Registrar POST /api/caixa
func (h *CaixaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CreateCaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	lancamento, err := h.uc.Registrar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lancamento)
}

// Listar GET /api/caixa
func (h *CaixaHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarPorTipo GET /api/caixa/tipo/:tipo
func (h *CaixaHandler) ListarPorTipo(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorTipo(c.Params("tipo"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarPorPeriodo GET /api/caixa/periodo?inicio=&fim=
func (h *CaixaHandler) ListarPorPeriodo(c *fiber.Ctx) error {
	inicio, fim, err := parsePeriodo(c.Query("inicio"), c.Query("fim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio e fim devem ser datas (2006-01-02)"})
	}
	list, err := h.uc.ListarPorPeriodo(inicio, fim)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// BuscarPorDescricao GET /api/caixa/buscar?descricao=
func (h *CaixaHandler) BuscarPorDescricao(c *fiber.Ctx) error {
	descricao := c.Query("descricao")
	if descricao == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro descricao é obrigatório"})
	}
	list, err := h.uc.BuscarPorDescricao(descricao)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// Saldo GET /api/caixa/saldo
func (h *CaixaHandler) Saldo(c *fiber.Ctx) error {
	out, err := h.uc.SaldoAtual()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}
