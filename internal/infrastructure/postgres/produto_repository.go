package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id, cp, nome, tipo, porcionamento, qtd_porcionamento, valor_unitario, estoque_atual`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CP, p.Nome, p.Tipo, p.Porcionamento, p.QtdPorcionamento, p.ValorUnitario, p.EstoqueAtual,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID busca um produto por id; nil se não existir.
func (r *ProdutoRepo) GetByID(ctx context.Context, id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1`
	p, err := scanProduto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetByCP busca um produto pelo código sequencial; nil se não existir.
func (r *ProdutoRepo) GetByCP(ctx context.Context, cp int) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE cp = $1`
	p, err := scanProduto(r.q.QueryRow(ctx, query, cp))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto por cp: %w", err)
	}
	return p, nil
}

// NextCP devolve MAX(cp)+1. A sequência só é contínua enquanto não houver
// exclusões no catálogo.
func (r *ProdutoRepo) NextCP(ctx context.Context) (int, error) {
	var next int
	err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(cp), 0) + 1 FROM produtos`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next cp: %w", err)
	}
	return next, nil
}

// List lista o catálogo ordenado por cp, com filtros opcionais de nome
// (substring case-insensitive) e tipo exato.
func (r *ProdutoRepo) List(ctx context.Context, search, tipo string, limit int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos`
	var args []any
	var conds []string
	if search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		conds = append(conds, fmt.Sprintf("nome ILIKE $%d", len(args)))
	}
	if tipo != "" {
		args = append(args, tipo)
		conds = append(conds, fmt.Sprintf("tipo = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += fmt.Sprintf(" ORDER BY cp LIMIT %d", limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		lista = append(lista, p)
	}
	return lista, rows.Err()
}

// ListAll devolve o catálogo completo para o lookup id→categoria/nome do
// motor de relatórios. Erro aqui é fonte de dados indisponível: o relatório
// de categoria não tem como seguir sem o catálogo.
func (r *ProdutoRepo) ListAll(ctx context.Context) ([]*entity.Produto, error) {
	rows, err := r.q.Query(ctx, `SELECT `+produtoColunas+` FROM produtos ORDER BY cp`)
	if err != nil {
		return nil, fmt.Errorf("%w: list produtos: %v", domain.ErrFonteDadosIndisponivel, err)
	}
	defer rows.Close()

	var lista []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		lista = append(lista, p)
	}
	return lista, rows.Err()
}

// Update atualiza os dados do produto (id e cp não mudam).
func (r *ProdutoRepo) Update(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, tipo = $3, porcionamento = $4, qtd_porcionamento = $5,
		    valor_unitario = $6, estoque_atual = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nome, p.Tipo, p.Porcionamento, p.QtdPorcionamento, p.ValorUnitario, p.EstoqueAtual,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Delete exclui um produto por id.
func (r *ProdutoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(&p.ID, &p.CP, &p.Nome, &p.Tipo, &p.Porcionamento,
		&p.QtdPorcionamento, &p.ValorUnitario, &p.EstoqueAtual)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
