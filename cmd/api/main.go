package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/verdurao/pos-api/internal/application/analytics"
	"github.com/verdurao/pos-api/internal/application/auth"
	"github.com/verdurao/pos-api/internal/application/usecase"
	infrapdf "github.com/verdurao/pos-api/internal/infrastructure/pdf"
	"github.com/verdurao/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/verdurao/pos-api/internal/interfaces/http"
	"github.com/verdurao/pos-api/pkg/config"
	"github.com/verdurao/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// O dashboard espera os valores monetários como números JSON, não strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)

	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, clienteRepo)

	reciboGen := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)
	reciboUC := usecase.NewReciboUseCase(pedidoRepo, reciboGen)

	relatoriosUC := analytics.NewRelatoriosUseCase(pedidoRepo, produtoRepo, cfg.Analytics.MaxPedidos)
	authUC := auth.NewAuthUseCase(cfg.Auth, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Verdurão POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:    clienteUC,
		ProdutoUC:    produtoUC,
		PedidoUC:     pedidoUC,
		ReciboUC:     reciboUC,
		RelatoriosUC: relatoriosUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
