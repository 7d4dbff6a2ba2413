package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// limitePadraoPedidos teto de pedidos por consulta quando o filtro não
// define um. Acima do teto o snapshot (e os relatórios sobre ele) é
// aproximado.
const limitePadraoPedidos = 1000

// PedidoRepo implementação de PedidoRepository. Segura o pool diretamente
// porque a criação de pedido abre transação (cabeçalho + itens).
type PedidoRepo struct {
	pool *pgxpool.Pool
}

// NewPedidoRepository constrói o adaptador.
func NewPedidoRepository(pool *pgxpool.Pool) *PedidoRepo {
	return &PedidoRepo{pool: pool}
}

const pedidoColunas = `id, data_pedido, cliente_id, cliente_nome, cliente_telefone,
	cliente_endereco, total_itens, valor_total, observacao`

// Create persiste o pedido e seus itens na mesma transação, preservando a
// ordem das linhas (coluna posicao).
func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO pedidos (`+pedidoColunas+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.DataPedido, p.ClienteID, p.ClienteNome, p.ClienteTelefone,
		p.ClienteEndereco, p.TotalItens, p.ValorTotal, p.Observacao,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}

	for i, item := range p.Itens {
		_, err = tx.Exec(ctx, `
			INSERT INTO itens_pedido (pedido_id, posicao, produto_id, produto_nome,
				quantidade, valor_unitario, valor_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, i, item.ProdutoID, item.ProdutoNome,
			item.Quantidade, item.ValorUnitario, item.ValorTotal,
		)
		if err != nil {
			return fmt.Errorf("insert item do pedido: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit pedido: %w", err)
	}
	return nil
}

// GetByID busca um pedido com itens; nil se não existir.
func (r *PedidoRepo) GetByID(ctx context.Context, id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColunas + ` FROM pedidos WHERE id = $1`
	p, err := scanPedido(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	if err := r.carregarItens(ctx, []*entity.Pedido{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// List devolve os pedidos mais recentes primeiro, com itens.
func (r *PedidoRepo) List(ctx context.Context, limit int) ([]*entity.Pedido, error) {
	if limit <= 0 {
		limit = limitePadraoPedidos
	}
	query := fmt.Sprintf(`SELECT `+pedidoColunas+` FROM pedidos ORDER BY data_pedido DESC LIMIT %d`, limit)
	return r.listar(ctx, query)
}

// ListByFiltro devolve o snapshot de pedidos do motor de relatórios.
//
// O filtro de período compara data_pedido como texto — o formato ISO-8601
// ordena lexicograficamente, então BETWEEN textual equivale ao recorte
// cronológico inclusivo. Erro de consulta aqui é fonte de dados
// indisponível: falha dura, propagada ao chamador.
func (r *PedidoRepo) ListByFiltro(ctx context.Context, f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	limite := f.Limite
	if limite <= 0 {
		limite = limitePadraoPedidos
	}

	query := `SELECT ` + pedidoColunas + ` FROM pedidos`
	var args []any
	var conds []string
	if f.DataInicio != "" {
		args = append(args, f.DataInicio)
		conds = append(conds, fmt.Sprintf("data_pedido >= $%d", len(args)))
	}
	if f.DataFim != "" {
		args = append(args, f.DataFim)
		conds = append(conds, fmt.Sprintf("data_pedido <= $%d", len(args)))
	}
	if f.ClienteID != "" {
		args = append(args, f.ClienteID)
		conds = append(conds, fmt.Sprintf("cliente_id = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += fmt.Sprintf(" ORDER BY data_pedido LIMIT %d", limite)

	lista, err := r.listar(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFonteDadosIndisponivel, err)
	}
	return lista, nil
}

func (r *PedidoRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		lista = append(lista, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.carregarItens(ctx, lista); err != nil {
		return nil, err
	}
	return lista, nil
}

// carregarItens busca os itens de todos os pedidos numa consulta só e os
// distribui na ordem persistida.
func (r *PedidoRepo) carregarItens(ctx context.Context, pedidos []*entity.Pedido) error {
	if len(pedidos) == 0 {
		return nil
	}
	ids := make([]string, 0, len(pedidos))
	porID := make(map[string]*entity.Pedido, len(pedidos))
	for _, p := range pedidos {
		ids = append(ids, p.ID)
		porID[p.ID] = p
	}

	rows, err := r.pool.Query(ctx, `
		SELECT pedido_id, produto_id, produto_nome, quantidade, valor_unitario, valor_total
		FROM itens_pedido
		WHERE pedido_id = ANY($1)
		ORDER BY pedido_id, posicao`, ids)
	if err != nil {
		return fmt.Errorf("list itens dos pedidos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pedidoID string
		var item entity.ItemPedido
		if err := rows.Scan(&pedidoID, &item.ProdutoID, &item.ProdutoNome,
			&item.Quantidade, &item.ValorUnitario, &item.ValorTotal); err != nil {
			return fmt.Errorf("scan item do pedido: %w", err)
		}
		if p, ok := porID[pedidoID]; ok {
			p.Itens = append(p.Itens, item)
		}
	}
	return rows.Err()
}

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	err := row.Scan(&p.ID, &p.DataPedido, &p.ClienteID, &p.ClienteNome, &p.ClienteTelefone,
		&p.ClienteEndereco, &p.TotalItens, &p.ValorTotal, &p.Observacao)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
