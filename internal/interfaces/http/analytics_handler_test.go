package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdurao/pos-api/internal/application/analytics"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
	apphttp "github.com/verdurao/pos-api/internal/interfaces/http"
)

// Como em produção: o dashboard espera números JSON, não strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória das portas de persistência
// ──────────────────────────────────────────────────────────────────────────────

type pedidoRepoStub struct {
	pedidos []*entity.Pedido
	err     error
}

func (s *pedidoRepoStub) Create(ctx context.Context, p *entity.Pedido) error { return nil }
func (s *pedidoRepoStub) GetByID(ctx context.Context, id string) (*entity.Pedido, error) {
	return nil, nil
}
func (s *pedidoRepoStub) List(ctx context.Context, limit int) ([]*entity.Pedido, error) {
	return s.pedidos, s.err
}
func (s *pedidoRepoStub) ListByFiltro(ctx context.Context, filtro repository.PedidoFiltro) ([]*entity.Pedido, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Pedido
	for _, p := range s.pedidos {
		if filtro.DataInicio != "" && p.DataPedido < filtro.DataInicio {
			continue
		}
		if filtro.DataFim != "" && p.DataPedido > filtro.DataFim {
			continue
		}
		if filtro.ClienteID != "" && p.ClienteID != filtro.ClienteID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type produtoRepoStub struct {
	produtos []*entity.Produto
}

func (s *produtoRepoStub) Create(ctx context.Context, p *entity.Produto) error { return nil }
func (s *produtoRepoStub) GetByID(ctx context.Context, id string) (*entity.Produto, error) {
	return nil, nil
}
func (s *produtoRepoStub) GetByCP(ctx context.Context, cp int) (*entity.Produto, error) {
	return nil, nil
}
func (s *produtoRepoStub) NextCP(ctx context.Context) (int, error) { return 1, nil }
func (s *produtoRepoStub) List(ctx context.Context, search, tipo string, limit int) ([]*entity.Produto, error) {
	return nil, nil
}
func (s *produtoRepoStub) ListAll(ctx context.Context) ([]*entity.Produto, error) {
	return s.produtos, nil
}
func (s *produtoRepoStub) Update(ctx context.Context, p *entity.Produto) error { return nil }
func (s *produtoRepoStub) Delete(ctx context.Context, id string) error         { return nil }

// analyticsApp monta uma aplicação Fiber só com as rotas de analytics, sem
// middleware de auth, alimentada pelos stubs.
func analyticsApp(pedidoRepo repository.PedidoRepository, produtoRepo repository.ProdutoRepository) *fiber.App {
	uc := analytics.NewRelatoriosUseCase(pedidoRepo, produtoRepo, 0)
	h := apphttp.NewAnalyticsHandler(uc)

	app := fiber.New()
	grupo := app.Group("/api/analytics")
	grupo.Get("/resumo", h.Resumo)
	grupo.Get("/vendas-por-dia", h.VendasPorDia)
	grupo.Get("/vendas-por-mes", h.VendasPorMes)
	grupo.Get("/top-produtos", h.TopProdutos)
	grupo.Get("/vendas-cliente/:clienteId", h.VendasCliente)
	return app
}

func pedidosFixture() []*entity.Pedido {
	d := func(v string) decimal.Decimal {
		out, _ := decimal.NewFromString(v)
		return out
	}
	return []*entity.Pedido{
		{
			ID:          "ped-1",
			DataPedido:  "2025-01-15T08:00:00Z",
			ClienteID:   "c1",
			ClienteNome: "Maria",
			TotalItens:  d("3"),
			ValorTotal:  d("30"),
			Itens: []entity.ItemPedido{
				{ProdutoID: "p1", ProdutoNome: "Tomate", Quantidade: d("2"), ValorTotal: d("20")},
				{ProdutoID: "p2", ProdutoNome: "Alface", Quantidade: d("1"), ValorTotal: d("10")},
			},
		},
		{
			ID:          "ped-2",
			DataPedido:  "2025-01-15T14:00:00Z",
			ClienteID:   "c1",
			ClienteNome: "Maria",
			TotalItens:  d("1"),
			ValorTotal:  d("15"),
			Itens: []entity.ItemPedido{
				{ProdutoID: "p1", ProdutoNome: "Tomate", Quantidade: d("1"), ValorTotal: d("15")},
			},
		},
	}
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyticsResumo_RespostaCompleta(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{pedidos: pedidosFixture()}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/resumo")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.InDelta(t, 45.0, body["faturamento_total"], 0.001)
	assert.InDelta(t, 2.0, body["total_pedidos"], 0.001)
	assert.InDelta(t, 22.5, body["ticket_medio"], 0.001)

	produto, ok := body["produto_mais_vendido"].(map[string]interface{})
	require.True(t, ok, "produto_mais_vendido deve ser objeto")
	assert.Equal(t, "Tomate", produto["nome"])
	assert.InDelta(t, 3.0, produto["quantidade"], 0.001)

	cliente, ok := body["cliente_maior_faturamento"].(map[string]interface{})
	require.True(t, ok, "cliente_maior_faturamento deve ser objeto")
	assert.Equal(t, "Maria", cliente["nome"])
	assert.InDelta(t, 45.0, cliente["valor"], 0.001)
}

// Conjunto vazio: agregados zerados, vencedores null no JSON.
func TestAnalyticsResumo_ConjuntoVazio(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/resumo")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 0.0, body["faturamento_total"], 0.001)
	assert.Nil(t, body["produto_mais_vendido"])
	assert.Nil(t, body["cliente_maior_faturamento"])
}

// dataInicio sem dataFim (e vice-versa) é 400 antes de tocar a fonte de dados.
func TestAnalytics_PeriodoIncompleto_Retorna400(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{err: domain.ErrFonteDadosIndisponivel}, &produtoRepoStub{})

	resp := get(t, app, "/api/analytics/resumo?dataInicio=2025-01-01T00:00:00Z")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp2 := get(t, app, "/api/analytics/vendas-por-dia?dataFim=2025-01-31T23:59:59Z")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestAnalytics_FonteIndisponivel_Retorna503(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{err: domain.ErrFonteDadosIndisponivel}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/resumo")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DATA_SOURCE_UNAVAILABLE")
}

func TestAnalyticsVendasPorDia_FiltroDePeriodo(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{pedidos: pedidosFixture()}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/vendas-por-dia?dataInicio=2025-01-01T00:00:00Z&dataFim=2025-01-15T12:00:00Z")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "2025-01-15", body[0]["data"])
	assert.InDelta(t, 30.0, body[0]["valor"], 0.001, "só o pedido dentro da janela entra na soma")
}

func TestAnalyticsVendasPorMes_AnoInvalido_Retorna400(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{pedidos: pedidosFixture()}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/vendas-por-mes?ano=abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyticsTopProdutos_RespeitaLimit(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{pedidos: pedidosFixture()}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/top-produtos?limit=1")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Tomate", body[0]["produto"])
}

func TestAnalyticsVendasCliente_Timeline(t *testing.T) {
	app := analyticsApp(&pedidoRepoStub{pedidos: pedidosFixture()}, &produtoRepoStub{})
	resp := get(t, app, "/api/analytics/vendas-cliente/c1")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "2025-01-15", body[0]["data"])
	assert.InDelta(t, 45.0, body[0]["valor"], 0.001)
}
