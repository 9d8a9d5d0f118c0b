package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
)

// respondErro traduz as sentinelas de domínio para status HTTP. Qualquer
// erro não mapeado vira 500.
func respondErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	case errors.Is(err, domain.ErrCPFAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CPF_EXISTS", Message: "já existe um cliente com esse CPF"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "o email já está cadastrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTOQUE_INSUFICIENTE", Message: "estoque insuficiente para a operação"})
	case errors.Is(err, domain.ErrVendaCancelada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VENDA_CANCELADA", Message: "a venda já está cancelada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func respondBodyInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}
