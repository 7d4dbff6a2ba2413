package repository

import (
	"context"

	"github.com/verdurao/pos-api/internal/domain/entity"
)

// ProdutoRepository define a porta de persistência de Produto.
// ListAll é a única operação usada pelo motor de relatórios (lookup
// id→categoria/nome); as demais servem o CRUD do catálogo.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	GetByID(ctx context.Context, id string) (*entity.Produto, error)
	GetByCP(ctx context.Context, cp int) (*entity.Produto, error)
	// NextCP devolve o próximo código sequencial de exibição (MAX(cp)+1).
	NextCP(ctx context.Context) (int, error)
	// List filtra por substring do nome e/ou tipo exato, ordenado por cp.
	List(ctx context.Context, search, tipo string, limit int) ([]*entity.Produto, error)
	// ListAll devolve o catálogo completo, sem filtro de período.
	ListAll(ctx context.Context) ([]*entity.Produto, error)
	Update(ctx context.Context, produto *entity.Produto) error
	Delete(ctx context.Context, id string) error
}
