// Package analytics implementa o motor de relatórios de vendas: achatamento
// de pedidos em fatos de linha, agregação por dimensão, ranking top-N e o
// join de categoria contra o catálogo.
//
// O motor é uma função pura de (pedidos, produtos, parâmetros) → relatório.
// Não mantém estado entre requisições e só bloqueia na borda da fonte de
// dados, o que permite testá-lo com fixtures em memória.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/verdurao/pos-api/internal/domain/entity"
)

// ItemFato é um item de pedido achatado, carregando a data e o cliente do
// pedido pai. É a base de toda agregação por produto/categoria.
type ItemFato struct {
	ProdutoID   string
	ProdutoNome string
	Quantidade  decimal.Decimal
	ValorTotal  decimal.Decimal
	DataPedido  string
	ClienteID   string
	ClienteNome string
}

// Achatar produz os fatos de linha de uma sequência de pedidos já filtrada.
// Pedido sem itens contribui com zero fatos; item sem produto_id é registro
// malformado e fica fora das somas (política de melhor esforço: relatório
// parcial vale mais que nenhum).
func Achatar(pedidos []*entity.Pedido) []ItemFato {
	var fatos []ItemFato
	for _, p := range pedidos {
		for _, item := range p.Itens {
			if item.ProdutoID == "" {
				continue
			}
			fatos = append(fatos, ItemFato{
				ProdutoID:   item.ProdutoID,
				ProdutoNome: item.ProdutoNome,
				Quantidade:  item.Quantidade,
				ValorTotal:  item.ValorTotal,
				DataPedido:  p.DataPedido,
				ClienteID:   p.ClienteID,
				ClienteNome: p.ClienteNome,
			})
		}
	}
	return fatos
}

// ChaveDia deriva a chave de agrupamento diário ("YYYY-MM-DD") do timestamp
// ISO-8601 do pedido. Fatia pura de string: timestamp malformado produz
// chave malformada sem validação.
func ChaveDia(dataPedido string) string {
	if len(dataPedido) < 10 {
		return dataPedido
	}
	return dataPedido[:10]
}

// ChaveMes deriva a chave de agrupamento mensal ("YYYY-MM").
func ChaveMes(dataPedido string) string {
	if len(dataPedido) < 7 {
		return dataPedido
	}
	return dataPedido[:7]
}
