package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColunas = `id, nome, telefone, email, endereco, sexo, observacao, data_cadastro`

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nome, c.Telefone, c.Email, c.Endereco, c.Sexo, c.Observacao, c.DataCadastro,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID busca um cliente por id; nil se não existir.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes WHERE id = $1`
	c, err := scanCliente(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// List lista clientes por nome; search filtra por substring case-insensitive
// em nome, telefone ou email (o comportamento do $regex/i do PDV original).
func (r *ClienteRepo) List(ctx context.Context, search string, limit int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColunas + ` FROM clientes`
	args := []any{}
	if search != "" {
		query += ` WHERE nome ILIKE $1 OR telefone ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+escapeLike(search)+"%")
	}
	query += fmt.Sprintf(` ORDER BY nome LIMIT %d`, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		lista = append(lista, c)
	}
	return lista, rows.Err()
}

// Update atualiza os dados cadastrais (data_cadastro não muda).
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nome = $2, telefone = $3, email = $4, endereco = $5, sexo = $6, observacao = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nome, c.Telefone, c.Email, c.Endereco, c.Sexo, c.Observacao,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete exclui um cliente por id.
func (r *ClienteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Nome, &c.Telefone, &c.Email, &c.Endereco, &c.Sexo, &c.Observacao, &c.DataCadastro)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
