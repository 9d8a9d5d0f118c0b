package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/auth"
	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
)

// AuthHandler trata cadastro, login e logout.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Cadastro POST /api/auth/cadastro
func (h *AuthHandler) Cadastro(c *fiber.Ctx) error {
	var in dto.CadastroRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e senha são obrigatórios"})
	}
	if len(in.Senha) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "a senha deve ter ao menos 6 caracteres"})
	}
	out, err := h.uc.Cadastrar(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBodyInvalido(c)
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e senha são obrigatórios"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondErro(c, err)
	}
	return c.JSON(out)
}

// Logout POST /api/auth/logout
//
// O token é stateless; o logout existe para o cliente descartar o token e
// sempre responde 200.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.LoginResponse{Success: true, Message: "Logout realizado com sucesso"})
}
