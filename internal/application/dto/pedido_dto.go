package dto

import "github.com/shopspring/decimal"

// ItemPedidoDTO uma linha de venda, na entrada e na saída.
// valor_total vem pré-calculado do PDV (quantidade × valor_unitario) e é
// persistido como chegou.
type ItemPedidoDTO struct {
	ProdutoID     string          `json:"produto_id" validate:"required"`
	ProdutoNome   string          `json:"produto_nome" validate:"required"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

// CreatePedidoRequest entrada de POST /api/pedidos.
type CreatePedidoRequest struct {
	ClienteID  string          `json:"cliente_id"`
	TotalItens decimal.Decimal `json:"total_itens"`
	ValorTotal decimal.Decimal `json:"valor_total"`
	Observacao string          `json:"observacao"`
	Itens      []ItemPedidoDTO `json:"itens" validate:"required,min=1,dive"`
}

// PedidoResponse saída de um pedido, com o snapshot do cliente da criação.
type PedidoResponse struct {
	ID              string          `json:"id"`
	DataPedido      string          `json:"data_pedido"`
	ClienteID       string          `json:"cliente_id,omitempty"`
	ClienteNome     string          `json:"cliente_nome,omitempty"`
	ClienteTelefone string          `json:"cliente_telefone,omitempty"`
	ClienteEndereco string          `json:"cliente_endereco,omitempty"`
	TotalItens      decimal.Decimal `json:"total_itens"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	Observacao      string          `json:"observacao,omitempty"`
	Itens           []ItemPedidoDTO `json:"itens"`
}
