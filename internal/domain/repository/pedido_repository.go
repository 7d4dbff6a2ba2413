package repository

import (
	"context"

	"github.com/verdurao/pos-api/internal/domain/entity"
)

// PedidoFiltro restringe a janela de pedidos devolvida por ListByFiltro.
// DataInicio/DataFim são timestamps ISO-8601 inclusivos, comparados como
// texto contra data_pedido (o formato ordena lexicograficamente). Vazios
// significam "sem filtro". Limite zero usa o teto padrão do adaptador.
type PedidoFiltro struct {
	DataInicio string
	DataFim    string
	ClienteID  string
	Limite     int
}

// PedidoRepository define a porta de persistência de Pedido.
// Pedidos são imutáveis após a criação: não há Update nem Delete.
type PedidoRepository interface {
	// Create persiste o pedido e seus itens atomicamente.
	Create(ctx context.Context, pedido *entity.Pedido) error
	GetByID(ctx context.Context, id string) (*entity.Pedido, error)
	// List devolve os pedidos mais recentes primeiro (data_pedido desc).
	List(ctx context.Context, limit int) ([]*entity.Pedido, error)
	// ListByFiltro devolve o snapshot limitado de pedidos que alimenta o
	// motor de relatórios, com itens carregados.
	ListByFiltro(ctx context.Context, filtro PedidoFiltro) ([]*entity.Pedido, error)
}
