package entity

import "github.com/shopspring/decimal"

// Produto representa um item do catálogo de venda.
// CP é o código sequencial de exibição, atribuído na criação como MAX(cp)+1.
// A sequência só é contínua enquanto não houver exclusões — não é garantia.
type Produto struct {
	ID               string
	CP               int
	Nome             string
	Tipo             string // categoria, ex: "Legumes"
	Porcionamento    string // unidade de embalagem, ex: "kg", "maço"
	QtdPorcionamento decimal.Decimal
	ValorUnitario    decimal.Decimal
	EstoqueAtual     decimal.Decimal
}
