package repository

import (
	"context"

	"github.com/verdurao/pos-api/internal/domain/entity"
)

// ClienteRepository define a porta de persistência de Cliente.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	// List devolve clientes ordenados por nome; search filtra por substring
	// case-insensitive em nome, telefone ou email.
	List(ctx context.Context, search string, limit int) ([]*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id string) error
}
