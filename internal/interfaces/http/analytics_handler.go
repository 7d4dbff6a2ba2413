package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/verdurao/pos-api/internal/application/analytics"
	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain"
)

// AnalyticsHandler trata os relatórios agregados de vendas.
type AnalyticsHandler struct {
	uc *analytics.RelatoriosUseCase
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(uc *analytics.RelatoriosUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// filtro extrai e valida os parâmetros de período comuns. dataInicio e
// dataFim devem vir os dois ou nenhum.
func (h *AnalyticsHandler) filtro(c *fiber.Ctx) (analytics.Filtro, error) {
	var req dto.PeriodoRequest
	if err := c.QueryParser(&req); err != nil {
		return analytics.Filtro{}, errors.New("parâmetros de query inválidos")
	}
	if (req.DataInicio == "") != (req.DataFim == "") {
		return analytics.Filtro{}, errors.New("dataInicio e dataFim devem ser informados juntos")
	}
	return analytics.Filtro{
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		ClienteID:  req.ClienteID,
	}, nil
}

// limite lê um parâmetro numérico opcional; ausente ou inválido vale 0 e o
// caso de uso aplica o padrão.
func limite(c *fiber.Ctx, nome string) int {
	n, err := strconv.Atoi(c.Query(nome))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// respond converte o erro do caso de uso na resposta HTTP.
func (h *AnalyticsHandler) respond(c *fiber.Ctx, out interface{}, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrFonteDadosIndisponivel) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DATA_SOURCE_UNAVAILABLE", Message: "fonte de dados indisponível"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Resumo GET /api/analytics/resumo
func (h *AnalyticsHandler) Resumo(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Resumo(c.UserContext(), f)
	return h.respond(c, out, err)
}

// VendasPorDia GET /api/analytics/vendas-por-dia
func (h *AnalyticsHandler) VendasPorDia(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.VendasPorDia(c.UserContext(), f)
	return h.respond(c, out, err)
}

// VendasPorMes GET /api/analytics/vendas-por-mes?ano=
func (h *AnalyticsHandler) VendasPorMes(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	ano := 0
	if raw := c.Query("ano"); raw != "" {
		ano, err = strconv.Atoi(raw)
		if err != nil || ano < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ano deve ser um inteiro positivo"})
		}
	}
	out, err := h.uc.VendasPorMes(c.UserContext(), ano, f)
	return h.respond(c, out, err)
}

// VendasPorProduto GET /api/analytics/vendas-por-produto
func (h *AnalyticsHandler) VendasPorProduto(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.VendasPorProduto(c.UserContext(), f)
	return h.respond(c, out, err)
}

// TopProdutos GET /api/analytics/top-produtos?limit=
func (h *AnalyticsHandler) TopProdutos(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.TopProdutos(c.UserContext(), f, limite(c, "limit"))
	return h.respond(c, out, err)
}

// VendasPorCategoria GET /api/analytics/vendas-por-categoria
func (h *AnalyticsHandler) VendasPorCategoria(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.VendasPorCategoria(c.UserContext(), f)
	return h.respond(c, out, err)
}

// ProdutosPorMes GET /api/analytics/produtos-por-mes?limitProdutos=
func (h *AnalyticsHandler) ProdutosPorMes(c *fiber.Ctx) error {
	f, err := h.filtro(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ProdutosPorMes(c.UserContext(), f, limite(c, "limitProdutos"))
	return h.respond(c, out, err)
}

// VendasCliente GET /api/analytics/vendas-cliente/:clienteId
func (h *AnalyticsHandler) VendasCliente(c *fiber.Ctx) error {
	clienteID := c.Params("clienteId")
	if clienteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clienteId é obrigatório"})
	}
	out, err := h.uc.VendasClienteTimeline(c.UserContext(), clienteID)
	return h.respond(c, out, err)
}
