package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sabbatinimodas/backoffice-api/internal/domain/entity"
	"github.com/sabbatinimodas/backoffice-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

const vendaColumns = `id, cliente_id, data_venda, valor_total, desconto, valor_final,
		forma_pagamento, status, observacoes`

// VendaRepo implementação do port VendaRepository sobre PostgreSQL (pool ou tx).
// item_venda tem FK com ON DELETE CASCADE para venda.
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador de persistência de vendas.
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste a venda (sem os itens; ver CreateItem).
func (r *VendaRepo) Create(v *entity.Venda) error {
	query := `
		INSERT INTO venda (id, cliente_id, data_venda, valor_total, desconto, valor_final,
			forma_pagamento, status, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.DataVenda, v.ValorTotal, v.Desconto, v.ValorFinal,
		v.FormaPagamento, v.Status, v.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da venda.
func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	query := `
		INSERT INTO item_venda (id, venda_id, produto_id, quantidade, preco_unitario, desconto_item, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.VendaID, item.ProdutoID, item.Quantidade,
		item.PrecoUnitario, item.DescontoItem, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert item venda: %w", err)
	}
	return nil
}

// GetByID obtém uma venda pelo ID (itens são carregados à parte).
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	query := `SELECT ` + vendaColumns + ` FROM venda WHERE id = $1`
	v, err := scanVenda(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return v, nil
}

// ItensByVenda lista os itens de uma venda.
func (r *VendaRepo) ItensByVenda(vendaID string) ([]entity.ItemVenda, error) {
	query := `
		SELECT id, venda_id, produto_id, quantidade, preco_unitario, desconto_item, subtotal
		FROM item_venda WHERE venda_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list itens venda: %w", err)
	}
	defer rows.Close()
	var itens []entity.ItemVenda
	for rows.Next() {
		var item entity.ItemVenda
		if err := rows.Scan(&item.ID, &item.VendaID, &item.ProdutoID, &item.Quantidade,
			&item.PrecoUnitario, &item.DescontoItem, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan item venda: %w", err)
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}

// ListAll lista as vendas da mais recente para a mais antiga.
func (r *VendaRepo) ListAll() ([]*entity.Venda, error) {
	return r.list(`SELECT ` + vendaColumns + ` FROM venda ORDER BY data_venda DESC`)
}

// ListByPeriodo lista as vendas de um intervalo de datas.
func (r *VendaRepo) ListByPeriodo(inicio, fim time.Time) ([]*entity.Venda, error) {
	query := `SELECT ` + vendaColumns + `
		FROM venda WHERE data_venda BETWEEN $1 AND $2 ORDER BY data_venda DESC`
	return r.list(query, inicio, fim)
}

// ListByStatus lista as vendas de um status.
func (r *VendaRepo) ListByStatus(status string) ([]*entity.Venda, error) {
	query := `SELECT ` + vendaColumns + `
		FROM venda WHERE status = $1 ORDER BY data_venda DESC`
	return r.list(query, status)
}

// ListByCliente lista as vendas de um cliente.
func (r *VendaRepo) ListByCliente(clienteID string) ([]*entity.Venda, error) {
	query := `SELECT ` + vendaColumns + `
		FROM venda WHERE cliente_id = $1 ORDER BY data_venda DESC`
	return r.list(query, clienteID)
}

// UpdateStatus grava o status da venda.
func (r *VendaRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE venda SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status venda: %w", err)
	}
	return nil
}

// Count conta todas as vendas.
func (r *VendaRepo) Count() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM venda`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count vendas: %w", err)
	}
	return total, nil
}

// SumFaturamento soma valor_final das vendas concluídas.
func (r *VendaRepo) SumFaturamento() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(valor_final), 0) FROM venda WHERE status = 'concluida'`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum faturamento: %w", err)
	}
	return total, nil
}

func (r *VendaRepo) list(query string, args ...any) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	err := row.Scan(
		&v.ID, &v.ClienteID, &v.DataVenda, &v.ValorTotal, &v.Desconto, &v.ValorFinal,
		&v.FormaPagamento, &v.Status, &v.Observacoes,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
