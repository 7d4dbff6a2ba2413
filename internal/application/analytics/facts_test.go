package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdurao/pos-api/internal/application/analytics"
	"github.com/verdurao/pos-api/internal/domain/entity"
)

func TestAchatar_PropagaDadosDoPedidoPai(t *testing.T) {
	pedidos := []*entity.Pedido{
		{
			ID:          "ped-1",
			DataPedido:  "2025-01-15T10:30:00Z",
			ClienteID:   "c1",
			ClienteNome: "Maria",
			Itens: []entity.ItemPedido{
				{ProdutoID: "p1", ProdutoNome: "Tomate", Quantidade: decimal.NewFromInt(2), ValorTotal: decimal.NewFromInt(10)},
				{ProdutoID: "p2", ProdutoNome: "Alface", Quantidade: decimal.NewFromInt(1), ValorTotal: decimal.NewFromInt(5)},
			},
		},
	}

	fatos := analytics.Achatar(pedidos)
	require.Len(t, fatos, 2)
	assert.Equal(t, "2025-01-15T10:30:00Z", fatos[0].DataPedido)
	assert.Equal(t, "c1", fatos[0].ClienteID)
	assert.Equal(t, "Maria", fatos[1].ClienteNome)
	assert.Equal(t, "Alface", fatos[1].ProdutoNome)
}

// Item sem produto_id é registro malformado: fica fora das somas, os itens
// válidos do mesmo pedido entram normalmente.
func TestAchatar_DescartaItemSemProdutoID(t *testing.T) {
	pedidos := []*entity.Pedido{
		{
			ID:         "ped-1",
			DataPedido: "2025-01-15T10:30:00Z",
			Itens: []entity.ItemPedido{
				{ProdutoID: "", ProdutoNome: "Fantasma", Quantidade: decimal.NewFromInt(9)},
				{ProdutoID: "p1", ProdutoNome: "Tomate", Quantidade: decimal.NewFromInt(2)},
			},
		},
	}

	fatos := analytics.Achatar(pedidos)
	require.Len(t, fatos, 1)
	assert.Equal(t, "p1", fatos[0].ProdutoID)
}

func TestAchatar_PedidoSemItens(t *testing.T) {
	pedidos := []*entity.Pedido{{ID: "ped-1", DataPedido: "2025-01-15T10:30:00Z"}}
	assert.Empty(t, analytics.Achatar(pedidos))
}

func TestChaveDia(t *testing.T) {
	assert.Equal(t, "2025-01-15", analytics.ChaveDia("2025-01-15T10:30:00Z"))
	assert.Equal(t, "2025-01", analytics.ChaveDia("2025-01"), "timestamp curto volta como está")
}

func TestChaveMes(t *testing.T) {
	assert.Equal(t, "2025-01", analytics.ChaveMes("2025-01-15T10:30:00Z"))
	assert.Equal(t, "2025", analytics.ChaveMes("2025"))
}
