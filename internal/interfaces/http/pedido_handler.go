package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/application/usecase"
	"github.com/verdurao/pos-api/internal/domain"
)

// PedidoHandler trata as requisições HTTP de pedidos.
type PedidoHandler struct {
	uc       *usecase.PedidoUseCase
	reciboUC *usecase.ReciboUseCase
}

// NewPedidoHandler constrói o handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, reciboUC *usecase.ReciboUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, reciboUC: reciboUC}
}

// Create POST /api/pedidos
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pedido, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// List GET /api/pedidos
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(lista)
}

// GetByID GET /api/pedidos/:id
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	pedido, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(pedido)
}

// Recibo GET /api/pedidos/:id/recibo — recibo do pedido em PDF.
func (h *PedidoHandler) Recibo(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.reciboUC.Gerar(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%s.pdf"`, id))
	return c.Send(pdf)
}
