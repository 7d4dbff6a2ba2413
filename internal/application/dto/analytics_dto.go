package dto

import "github.com/shopspring/decimal"

// ── Parâmetros de query ───────────────────────────────────────────────────────

// PeriodoRequest parâmetros comuns dos relatórios de analytics.
// DataInicio/DataFim são timestamps ISO-8601 inclusivos; devem vir os dois ou
// nenhum. ClienteID restringe ao cliente exato.
type PeriodoRequest struct {
	DataInicio string `query:"dataInicio"`
	DataFim    string `query:"dataFim"`
	ClienteID  string `query:"clienteId"`
}

// ── Resumo ────────────────────────────────────────────────────────────────────

// ProdutoMaisVendidoDTO vencedor por quantidade somada de linhas.
type ProdutoMaisVendidoDTO struct {
	Nome       string          `json:"nome"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// ClienteMaiorFaturamentoDTO vencedor por valor somado de pedidos.
type ClienteMaiorFaturamentoDTO struct {
	Nome  string          `json:"nome"`
	Valor decimal.Decimal `json:"valor"`
}

// ResumoDTO resposta de GET /api/analytics/resumo.
// Os campos "vencedores" são null quando o conjunto filtrado não tem linhas
// (produto) ou não tem pedidos com cliente (cliente).
type ResumoDTO struct {
	FaturamentoTotal        decimal.Decimal             `json:"faturamento_total"`
	TotalPedidos            int                         `json:"total_pedidos"`
	TicketMedio             decimal.Decimal             `json:"ticket_medio"`
	ProdutoMaisVendido      *ProdutoMaisVendidoDTO      `json:"produto_mais_vendido"`
	ClienteMaiorFaturamento *ClienteMaiorFaturamentoDTO `json:"cliente_maior_faturamento"`
}

// ── Séries e rankings ─────────────────────────────────────────────────────────

// VendaDiaDTO um bucket de GET /api/analytics/vendas-por-dia.
type VendaDiaDTO struct {
	Data            string          `json:"data"` // chave de dia YYYY-MM-DD
	Valor           decimal.Decimal `json:"valor"`
	QuantidadeItens decimal.Decimal `json:"quantidade_itens"`
}

// VendaMesDTO um bucket de GET /api/analytics/vendas-por-mes.
type VendaMesDTO struct {
	Mes     string          `json:"mes"` // chave de mês YYYY-MM
	Valor   decimal.Decimal `json:"valor"`
	Pedidos int             `json:"pedidos"`
}

// VendaProdutoDTO uma posição de GET /api/analytics/vendas-por-produto.
type VendaProdutoDTO struct {
	Produto string          `json:"produto"`
	Valor   decimal.Decimal `json:"valor"`
}

// TopProdutoDTO uma posição de GET /api/analytics/top-produtos.
type TopProdutoDTO struct {
	Produto    string          `json:"produto"`
	Quantidade decimal.Decimal `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// VendaCategoriaDTO um bucket de GET /api/analytics/vendas-por-categoria.
type VendaCategoriaDTO struct {
	Categoria  string          `json:"categoria"`
	Valor      decimal.Decimal `json:"valor"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// LinhaProdutosMes uma linha de GET /api/analytics/produtos-por-mes:
// "mes" mais uma coluna por produto do top-K (nome do produto → valor).
// O formato dinâmico vem do gráfico de linhas do dashboard, que descobre as
// séries pelas chaves da primeira linha.
type LinhaProdutosMes map[string]interface{}

// PontoTimelineDTO um ponto de GET /api/analytics/vendas-cliente/:clienteId.
type PontoTimelineDTO struct {
	Data  string          `json:"data"`
	Valor decimal.Decimal `json:"valor"`
}
