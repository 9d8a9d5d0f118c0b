package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
)

// VendaHandler trata as requisições HTTP de vendas (protegido).
type VendaHandler struct {
	uc *usecase.VendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *usecase.VendaUseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Criar POST /api/vendas
func (h *VendaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CreateVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	venda, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venda)
}

// Listar GET /api/vendas
func (h *VendaHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarPorPeriodo GET /api/vendas/periodo?inicio=&fim=
func (h *VendaHandler) ListarPorPeriodo(c *fiber.Ctx) error {
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

// ListarPorStatus GET /api/vendas/status/:status
func (h *VendaHandler) ListarPorStatus(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorStatus(c.Params("status"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// ListarPorCliente GET /api/vendas/cliente/:clienteId
func (h *VendaHandler) ListarPorCliente(c *fiber.Ctx) error {
	list, err := h.uc.ListarPorCliente(c.Params("clienteId"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(list)
}

// Estatisticas GET /api/vendas/estatisticas
func (h *VendaHandler) Estatisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estatisticas()
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID GET /api/vendas/:id
func (h *VendaHandler) BuscarPorID(c *fiber.Ctx) error {
	venda, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(venda)
}

// Recibo GET /api/vendas/:id/recibo
func (h *VendaHandler) Recibo(c *fiber.Ctx) error {
	pdf, err := h.uc.Recibo(c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// Cancelar PUT /api/vendas/:id/cancelar
func (h *VendaHandler) Cancelar(c *fiber.Ctx) error {
	venda, err := h.uc.Cancelar(c.Context(), c.Params("id"))
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(venda)
}

// parsePeriodo aceita data simples (2006-01-02) ou RFC3339; o fim em data
// simples é inclusivo (vira o último instante do dia).
func parsePeriodo(inicioStr, fimStr string) (time.Time, time.Time, error) {
	inicio, err := parseData(inicioStr, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim, err := parseData(fimStr, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fim, nil
}

func parseData(s string, fimDoDia bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if fimDoDia {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
