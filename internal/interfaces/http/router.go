package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/verdurao/pos-api/internal/application/analytics"
	"github.com/verdurao/pos-api/internal/application/auth"
	"github.com/verdurao/pos-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC    *usecase.ClienteUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	PedidoUC     *usecase.PedidoUseCase
	ReciboUC     *usecase.ReciboUseCase
	RelatoriosUC *analytics.RelatoriosUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Produtos (protegido); a rota /cp/:cp vem antes de /:id para o Fiber não
	// casar "cp" como id.
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/cp/:cp", produtoHandler.GetByCP)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Pedidos (protegido)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.ReciboUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Get("/:id/recibo", pedidoHandler.Recibo)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.RelatoriosUC)
	analyticsGroup.Get("/resumo", analyticsHandler.Resumo)
	analyticsGroup.Get("/vendas-por-dia", analyticsHandler.VendasPorDia)
	analyticsGroup.Get("/vendas-por-mes", analyticsHandler.VendasPorMes)
	analyticsGroup.Get("/vendas-por-produto", analyticsHandler.VendasPorProduto)
	analyticsGroup.Get("/top-produtos", analyticsHandler.TopProdutos)
	analyticsGroup.Get("/vendas-por-categoria", analyticsHandler.VendasPorCategoria)
	analyticsGroup.Get("/produtos-por-mes", analyticsHandler.ProdutosPorMes)
	analyticsGroup.Get("/vendas-cliente/:clienteId", analyticsHandler.VendasCliente)
}
