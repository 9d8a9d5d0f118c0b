package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sabbatinimodas/backoffice-api/internal/domain"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, email, senha_hash, nome, ativo, data_cadastro, data_atualizacao`

// UsuarioRepo implementação do port UsuarioRepository sobre PostgreSQL (pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de contas.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste uma nova conta. 23505 (email) vira ErrDuplicate.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuario (id, email, senha_hash, nome, ativo, data_cadastro, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Ativo, u.DataCadastro, u.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém uma conta pelo ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuario WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// GetByEmail obtém uma conta pelo email (ativa ou não; quem decide é o auth).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuario WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get usuario por email")
}

// ExistsEmail verifica a existência do email entre ativos e inativos.
func (r *UsuarioRepo) ExistsEmail(email string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM usuario WHERE email = $1)`, email).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists email: %w", err)
	}
	return existe, nil
}

// ListAtivos lista as contas ativas.
func (r *UsuarioRepo) ListAtivos() ([]*entity.Usuario, error) {
	return r.list(`SELECT ` + usuarioColumns + ` FROM usuario WHERE ativo = TRUE ORDER BY nome`)
}

// ListTodos lista todas as contas.
func (r *UsuarioRepo) ListTodos() ([]*entity.Usuario, error) {
	return r.list(`SELECT ` + usuarioColumns + ` FROM usuario ORDER BY nome`)
}

// Update atualiza os campos mutáveis da conta.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuario SET email = $2, senha_hash = $3, nome = $4, ativo = $5, data_atualizacao = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Ativo, u.DataAtualizacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete remove a conta em definitivo.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) list(query string) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Ativo, &u.DataCadastro, &u.DataAtualizacao); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Ativo, &u.DataCadastro, &u.DataAtualizacao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
