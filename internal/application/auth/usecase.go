package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sabbatinimodas/backoffice-api/internal/application/dto"
	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
	"github.com/sabbatinimodas/backoffice-api/pkg/token"
)

// JWTConfig configuração para emissão de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Cadastrar cria uma conta: hasheia a senha com bcrypt, persiste e devolve
// um token para login automático. ErrEmailAlreadyExists se o email já existir.
func (uc *AuthUseCase) Cadastrar(in dto.CadastroRequest) (*dto.LoginResponse, error) {
	existe, err := uc.usuarioRepo.ExistsEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:              uuid.New().String(),
		Email:           in.Email,
		SenhaHash:       string(hash),
		Nome:            nome,
		Ativo:           true,
		DataCadastro:    now,
		DataAtualizacao: now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nome, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Usuário cadastrado com sucesso",
		Token:   tok,
		User:    toUsuarioResponse(usuario),
	}, nil
}

// Login verifica email/senha e devolve token + usuário. Conta inexistente,
// inativa ou senha errada falham igual: ErrUnauthorized (a comparação bcrypt
// é em tempo constante).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Ativo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nome, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		Token:   tok,
		User:    toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nome:            u.Nome,
		Ativo:           u.Ativo,
		DataCadastro:    u.DataCadastro,
		DataAtualizacao: u.DataAtualizacao,
	}
}
