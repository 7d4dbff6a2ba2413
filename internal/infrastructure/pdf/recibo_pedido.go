// Package pdf implementa a geração do recibo de pedido em PDF (Maroto v2).
//
// Layout A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: nome da loja  │  Pedido nº + data           │
//	│  CLIENTE: nome / telefone / endereço (se houver)     │
//	│  ───────────────────────────────────────────────────│
//	│  TABELA: Qtd | Produto | V.Unit | Total              │
//	│  ───────────────────────────────────────────────────│
//	│  TOTAL DO PEDIDO + observação                        │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/verdurao/pos-api/internal/application/usecase"
	"github.com/verdurao/pos-api/internal/domain/entity"
)

var (
	corPrimaria = &props.Color{Red: 46, Green: 125, Blue: 50}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// impressora pt-BR: separador de milhar "." e decimal ",".
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

func formatarReal(v decimal.Decimal) string {
	f, _ := v.Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}

var _ usecase.ReciboPDFGenerator = (*MarotoReciboGenerator)(nil)

// MarotoReciboGenerator implementa usecase.ReciboPDFGenerator com Maroto v2.
type MarotoReciboGenerator struct {
	nomeLoja string
}

// NewMarotoReciboGenerator constrói o gerador.
func NewMarotoReciboGenerator(nomeLoja string) *MarotoReciboGenerator {
	return &MarotoReciboGenerator{nomeLoja: nomeLoja}
}

// GerarReciboPedido gera o PDF e devolve seus bytes.
func (g *MarotoReciboGenerator) GerarReciboPedido(_ context.Context, pedido *entity.Pedido) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.nomeLoja, pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	if pedido.ClienteNome != "" {
		m.AddRows(clienteRow(pedido))
		m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	}

	m.AddRows(tabelaHeaderRow())
	for _, item := range pedido.Itens {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(totalRow(pedido))
	if pedido.Observacao != "" {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Obs: "+pedido.Observacao, props.Text{Size: 8, Color: corCinza, Top: 2})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da loja (esq) e número + data do pedido (dir).
func headerRow(nomeLoja string, pedido *entity.Pedido) core.Row {
	data := pedido.DataPedido
	if len(data) > 10 {
		data = data[:10]
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nomeLoja, props.Text{Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1}),
			text.New("Recibo de Pedido", props.Text{Size: 9, Top: 9, Color: corCinza}),
		),
		col.New(5).Add(
			text.New("Pedido "+pedido.ID, props.Text{Size: 8, Align: align.Right, Top: 2}),
			text.New("Data: "+data, props.Text{Size: 9, Align: align.Right, Top: 8}),
		),
	)
}

// clienteRow: snapshot do cliente gravado no pedido.
func clienteRow(pedido *entity.Pedido) core.Row {
	contato := pedido.ClienteTelefone
	if pedido.ClienteEndereco != "" {
		contato += " | " + pedido.ClienteEndereco
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente: "+pedido.ClienteNome, props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}),
			text.New(contato, props.Text{Size: 8, Color: corCinza, Top: 6}),
		),
	)
}

func tabelaHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Qtd", estilo)),
		col.New(5).Add(text.New("Produto", estilo)),
		col.New(2).Add(text.New("V. Unit.", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right})),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right})),
	)
}

func itemRow(item entity.ItemPedido) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(item.Quantidade.String(), props.Text{Size: 9})),
		col.New(5).Add(text.New(item.ProdutoNome, props.Text{Size: 9})),
		col.New(2).Add(text.New(formatarReal(item.ValorUnitario), props.Text{Size: 9, Align: align.Right})),
		col.New(3).Add(text.New(formatarReal(item.ValorTotal), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(pedido *entity.Pedido) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New(
			ptBR.Sprintf("%v itens", pedido.TotalItens), props.Text{Size: 9, Color: corCinza, Top: 2},
		)),
		col.New(5).Add(text.New(
			"TOTAL: "+formatarReal(pedido.ValorTotal),
			props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1, Color: corPrimaria},
		)),
	)
}
