package dto

import "github.com/shopspring/decimal"

// CreateProdutoRequest entrada para criar ou atualizar um produto.
type CreateProdutoRequest struct {
	Nome             string          `json:"nome" validate:"required,min=1,max=200"`
	Tipo             string          `json:"tipo" validate:"required,min=1,max=100"`
	Porcionamento    string          `json:"porcionamento" validate:"required"`
	QtdPorcionamento decimal.Decimal `json:"qtd_porcionamento"`
	ValorUnitario    decimal.Decimal `json:"valor_unitario"`
	EstoqueAtual     decimal.Decimal `json:"estoque_atual"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID               string          `json:"id"`
	CP               int             `json:"cp"`
	Nome             string          `json:"nome"`
	Tipo             string          `json:"tipo"`
	Porcionamento    string          `json:"porcionamento"`
	QtdPorcionamento decimal.Decimal `json:"qtd_porcionamento"`
	ValorUnitario    decimal.Decimal `json:"valor_unitario"`
	EstoqueAtual     decimal.Decimal `json:"estoque_atual"`
}
