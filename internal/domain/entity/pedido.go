package entity

import "github.com/shopspring/decimal"

// ItemPedido é uma linha de venda dentro de um pedido.
// ProdutoNome é snapshot do catálogo no momento da venda; ValorTotal vem
// pré-calculado (Quantidade × ValorUnitario) e é confiado como está.
type ItemPedido struct {
	ProdutoID     string
	ProdutoNome   string
	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
	ValorTotal    decimal.Decimal
}

// Pedido representa uma venda concluída. Imutável após a criação.
//
// DataPedido é ISO-8601 UTC em texto — os filtros de período e as chaves de
// dia/mês do motor de relatórios dependem da ordenação lexicográfica desse
// formato, então o valor nunca é convertido para time.Time no caminho de
// agregação.
//
// Os campos Cliente* são snapshot do cadastro no momento da criação do
// pedido; relatórios históricos nunca refazem o join com o cadastro vivo.
type Pedido struct {
	ID              string
	DataPedido      string
	ClienteID       string
	ClienteNome     string
	ClienteTelefone string
	ClienteEndereco string
	TotalItens      decimal.Decimal
	ValorTotal      decimal.Decimal
	Observacao      string
	Itens           []ItemPedido
}
