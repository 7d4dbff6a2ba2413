package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

const (
	// CategoriaOutros é a categoria sentinela para linhas cujo produto não
	// existe mais no catálogo (ou está sem tipo).
	CategoriaOutros = "Outros"

	// TopProdutosPadrao é o N do relatório dedicado de top produtos.
	TopProdutosPadrao = 10

	// ProdutosPorMesPadrao é o K de produtos no relatório mês × produto.
	ProdutosPorMesPadrao = 5
)

// Filtro delimita o conjunto de pedidos de um relatório.
type Filtro struct {
	DataInicio string
	DataFim    string
	ClienteID  string
}

// RelatoriosUseCase computa os relatórios agregados de vendas.
//
// Cada relatório puxa um snapshot limitado de pedidos (e, para categoria, o
// catálogo completo) e agrega em memória: achatar → acumular → ordenar.
// Acima de maxPedidos pedidos na janela o relatório é aproximado.
type RelatoriosUseCase struct {
	pedidoRepo  repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
	maxPedidos  int
}

// NewRelatoriosUseCase constrói o caso de uso. maxPedidos <= 0 usa 1000.
func NewRelatoriosUseCase(pedidoRepo repository.PedidoRepository, produtoRepo repository.ProdutoRepository, maxPedidos int) *RelatoriosUseCase {
	if maxPedidos <= 0 {
		maxPedidos = 1000
	}
	return &RelatoriosUseCase{pedidoRepo: pedidoRepo, produtoRepo: produtoRepo, maxPedidos: maxPedidos}
}

// pedidos busca o snapshot de pedidos do filtro.
func (uc *RelatoriosUseCase) pedidos(ctx context.Context, f Filtro) ([]*entity.Pedido, error) {
	lista, err := uc.pedidoRepo.ListByFiltro(ctx, repository.PedidoFiltro{
		DataInicio: f.DataInicio,
		DataFim:    f.DataFim,
		ClienteID:  f.ClienteID,
		Limite:     uc.maxPedidos,
	})
	if err != nil {
		return nil, fmt.Errorf("analytics: buscar pedidos: %w", err)
	}
	return lista, nil
}

// Resumo computa faturamento total, contagem de pedidos, ticket médio e os
// dois vencedores (produto por quantidade, cliente por faturamento).
func (uc *RelatoriosUseCase) Resumo(ctx context.Context, f Filtro) (*dto.ResumoDTO, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &dto.ResumoDTO{
		FaturamentoTotal: decimal.Zero,
		TicketMedio:      decimal.Zero,
		TotalPedidos:     len(pedidos),
	}

	type metProduto struct {
		Nome       string
		Quantidade decimal.Decimal
	}
	type metCliente struct {
		Nome  string
		Valor decimal.Decimal
	}
	porProduto := NovoAcumulador[metProduto]()
	porCliente := NovoAcumulador[metCliente]()

	for _, p := range pedidos {
		out.FaturamentoTotal = out.FaturamentoTotal.Add(p.ValorTotal)

		// Pedido sem cliente fica fora do ranking de clientes por inteiro;
		// não existe bucket de cliente nulo.
		if p.ClienteID != "" {
			m := porCliente.Obter(p.ClienteID)
			m.Nome = p.ClienteNome
			m.Valor = m.Valor.Add(p.ValorTotal)
		}
	}
	for _, fato := range Achatar(pedidos) {
		m := porProduto.Obter(fato.ProdutoID)
		m.Nome = fato.ProdutoNome // nome mais recente visto para o id
		m.Quantidade = m.Quantidade.Add(fato.Quantidade)
	}

	if out.TotalPedidos > 0 {
		out.TicketMedio = out.FaturamentoTotal.Div(decimal.NewFromInt(int64(out.TotalPedidos)))
	}
	if melhor := porProduto.Maior(func(m *metProduto) decimal.Decimal { return m.Quantidade }); melhor != nil {
		out.ProdutoMaisVendido = &dto.ProdutoMaisVendidoDTO{
			Nome:       melhor.Metricas.Nome,
			Quantidade: melhor.Metricas.Quantidade,
		}
	}
	if melhor := porCliente.Maior(func(m *metCliente) decimal.Decimal { return m.Valor }); melhor != nil {
		out.ClienteMaiorFaturamento = &dto.ClienteMaiorFaturamentoDTO{
			Nome:  melhor.Metricas.Nome,
			Valor: melhor.Metricas.Valor,
		}
	}
	return out, nil
}

// VendasPorDia agrupa pedidos pela chave de dia, somando valor e itens.
func (uc *RelatoriosUseCase) VendasPorDia(ctx context.Context, f Filtro) ([]dto.VendaDiaDTO, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}

	type metDia struct {
		Valor           decimal.Decimal
		QuantidadeItens decimal.Decimal
	}
	porDia := NovoAcumulador[metDia]()
	for _, p := range pedidos {
		if p.DataPedido == "" {
			continue // sem data não há bucket
		}
		m := porDia.Obter(ChaveDia(p.DataPedido))
		m.Valor = m.Valor.Add(p.ValorTotal)
		m.QuantidadeItens = m.QuantidadeItens.Add(p.TotalItens)
	}
	porDia.OrdenarPorChave()

	out := make([]dto.VendaDiaDTO, 0, porDia.Len())
	for _, e := range porDia.Entradas() {
		out = append(out, dto.VendaDiaDTO{
			Data:            e.Chave,
			Valor:           e.Metricas.Valor,
			QuantidadeItens: e.Metricas.QuantidadeItens,
		})
	}
	return out, nil
}

// VendasPorMes agrupa pedidos pela chave de mês, somando valor e contando
// pedidos. ano > 0 restringe às chaves daquele ano.
func (uc *RelatoriosUseCase) VendasPorMes(ctx context.Context, ano int, f Filtro) ([]dto.VendaMesDTO, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}

	prefixoAno := ""
	if ano > 0 {
		prefixoAno = fmt.Sprintf("%04d-", ano)
	}

	type metMes struct {
		Valor   decimal.Decimal
		Pedidos int
	}
	porMes := NovoAcumulador[metMes]()
	for _, p := range pedidos {
		if p.DataPedido == "" {
			continue
		}
		mes := ChaveMes(p.DataPedido)
		if prefixoAno != "" && (len(mes) < len(prefixoAno) || mes[:len(prefixoAno)] != prefixoAno) {
			continue
		}
		m := porMes.Obter(mes)
		m.Valor = m.Valor.Add(p.ValorTotal)
		m.Pedidos++
	}
	porMes.OrdenarPorChave()

	out := make([]dto.VendaMesDTO, 0, porMes.Len())
	for _, e := range porMes.Entradas() {
		out = append(out, dto.VendaMesDTO{Mes: e.Chave, Valor: e.Metricas.Valor, Pedidos: e.Metricas.Pedidos})
	}
	return out, nil
}

// metProdutoValor métricas compartilhadas pelos rankings de produto.
type metProdutoValor struct {
	Nome       string
	Quantidade decimal.Decimal
	Valor      decimal.Decimal
}

// agruparPorProduto acumula os fatos de linha por produto_id.
func agruparPorProduto(fatos []ItemFato) *Acumulador[metProdutoValor] {
	ac := NovoAcumulador[metProdutoValor]()
	for _, f := range fatos {
		m := ac.Obter(f.ProdutoID)
		m.Nome = f.ProdutoNome
		m.Quantidade = m.Quantidade.Add(f.Quantidade)
		m.Valor = m.Valor.Add(f.ValorTotal)
	}
	return ac
}

// VendasPorProduto soma o valor das linhas por produto, do maior para o menor.
func (uc *RelatoriosUseCase) VendasPorProduto(ctx context.Context, f Filtro) ([]dto.VendaProdutoDTO, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}

	ac := agruparPorProduto(Achatar(pedidos))
	ac.OrdenarPorMetricaDesc(func(m *metProdutoValor) decimal.Decimal { return m.Valor })

	out := make([]dto.VendaProdutoDTO, 0, ac.Len())
	for _, e := range ac.Entradas() {
		out = append(out, dto.VendaProdutoDTO{Produto: e.Metricas.Nome, Valor: e.Metricas.Valor})
	}
	return out, nil
}

// TopProdutos devolve os limite produtos mais vendidos por quantidade.
// limite <= 0 usa TopProdutosPadrao.
func (uc *RelatoriosUseCase) TopProdutos(ctx context.Context, f Filtro, limite int) ([]dto.TopProdutoDTO, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}
	if limite <= 0 {
		limite = TopProdutosPadrao
	}

	ac := agruparPorProduto(Achatar(pedidos))
	top := ac.TopN(func(m *metProdutoValor) decimal.Decimal { return m.Quantidade }, limite)

	out := make([]dto.TopProdutoDTO, 0, len(top))
	for _, e := range top {
		out = append(out, dto.TopProdutoDTO{
			Produto:    e.Metricas.Nome,
			Quantidade: e.Metricas.Quantidade,
			Valor:      e.Metricas.Valor,
		})
	}
	return out, nil
}

// VendasPorCategoria resolve a categoria de cada linha pelo catálogo completo
// (sem filtro de período) e soma valor e quantidade por categoria. Produto
// fora do catálogo cai em "Outros".
func (uc *RelatoriosUseCase) VendasPorCategoria(ctx context.Context, f Filtro) ([]dto.VendaCategoriaDTO, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}
	produtos, err := uc.produtoRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: buscar catálogo: %w", err)
	}

	categorias := make(map[string]string, len(produtos))
	for _, p := range produtos {
		categorias[p.ID] = p.Tipo
	}

	type metCategoria struct {
		Valor      decimal.Decimal
		Quantidade decimal.Decimal
	}
	porCategoria := NovoAcumulador[metCategoria]()
	for _, fato := range Achatar(pedidos) {
		categoria := categorias[fato.ProdutoID]
		if categoria == "" {
			categoria = CategoriaOutros
		}
		m := porCategoria.Obter(categoria)
		m.Valor = m.Valor.Add(fato.ValorTotal)
		m.Quantidade = m.Quantidade.Add(fato.Quantidade)
	}
	porCategoria.OrdenarPorMetricaDesc(func(m *metCategoria) decimal.Decimal { return m.Valor })

	out := make([]dto.VendaCategoriaDTO, 0, porCategoria.Len())
	for _, e := range porCategoria.Entradas() {
		out = append(out, dto.VendaCategoriaDTO{
			Categoria:  e.Chave,
			Valor:      e.Metricas.Valor,
			Quantidade: e.Metricas.Quantidade,
		})
	}
	return out, nil
}

// ProdutosPorMes monta a série mês × produto restrita aos limite produtos de
// maior valor global na janela. Cada linha carrega "mes" mais uma coluna por
// produto do top; célula sem venda no mês sai como zero para o gráfico não
// perder a série. limite <= 0 usa ProdutosPorMesPadrao.
func (uc *RelatoriosUseCase) ProdutosPorMes(ctx context.Context, f Filtro, limite int) ([]dto.LinhaProdutosMes, error) {
	pedidos, err := uc.pedidos(ctx, f)
	if err != nil {
		return nil, err
	}
	if limite <= 0 {
		limite = ProdutosPorMesPadrao
	}

	fatos := Achatar(pedidos)

	// Top-K global por valor; define as colunas e a ordem delas.
	globais := agruparPorProduto(fatos)
	top := globais.TopN(func(m *metProdutoValor) decimal.Decimal { return m.Valor }, limite)
	noTop := make(map[string]bool, len(top))
	for _, e := range top {
		noTop[e.Chave] = true
	}

	// Soma mês × produto só para quem está no top.
	type metMesProduto struct {
		valores map[string]decimal.Decimal // produto_id → valor no mês
	}
	porMes := NovoAcumulador[metMesProduto]()
	for _, fato := range fatos {
		if fato.DataPedido == "" || !noTop[fato.ProdutoID] {
			continue
		}
		m := porMes.Obter(ChaveMes(fato.DataPedido))
		if m.valores == nil {
			m.valores = make(map[string]decimal.Decimal)
		}
		m.valores[fato.ProdutoID] = m.valores[fato.ProdutoID].Add(fato.ValorTotal)
	}
	porMes.OrdenarPorChave()

	out := make([]dto.LinhaProdutosMes, 0, porMes.Len())
	for _, e := range porMes.Entradas() {
		linha := dto.LinhaProdutosMes{"mes": e.Chave}
		for _, produto := range top {
			valor, ok := e.Metricas.valores[produto.Chave]
			if !ok {
				valor = decimal.Zero
			}
			linha[produto.Metricas.Nome] = valor
		}
		out = append(out, linha)
	}
	return out, nil
}

// VendasClienteTimeline devolve a série diária de compras de um cliente.
func (uc *RelatoriosUseCase) VendasClienteTimeline(ctx context.Context, clienteID string) ([]dto.PontoTimelineDTO, error) {
	pedidos, err := uc.pedidos(ctx, Filtro{ClienteID: clienteID})
	if err != nil {
		return nil, err
	}

	type metDia struct {
		Valor decimal.Decimal
	}
	porDia := NovoAcumulador[metDia]()
	for _, p := range pedidos {
		if p.DataPedido == "" {
			continue
		}
		m := porDia.Obter(ChaveDia(p.DataPedido))
		m.Valor = m.Valor.Add(p.ValorTotal)
	}
	porDia.OrdenarPorChave()

	out := make([]dto.PontoTimelineDTO, 0, porDia.Len())
	for _, e := range porDia.Entradas() {
		out = append(out, dto.PontoTimelineDTO{Data: e.Chave, Valor: e.Metricas.Valor})
	}
	return out, nil
}
