package usecase

import (
	"context"

	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

// ReciboPDFGenerator porta para o gerador do recibo de pedido em PDF.
type ReciboPDFGenerator interface {
	GerarReciboPedido(ctx context.Context, pedido *entity.Pedido) ([]byte, error)
}

// ReciboUseCase gera o recibo em PDF de um pedido fechado.
type ReciboUseCase struct {
	pedidoRepo repository.PedidoRepository
	generator  ReciboPDFGenerator
}

// NewReciboUseCase constrói o caso de uso.
func NewReciboUseCase(pedidoRepo repository.PedidoRepository, generator ReciboPDFGenerator) *ReciboUseCase {
	return &ReciboUseCase{pedidoRepo: pedidoRepo, generator: generator}
}

// Gerar busca o pedido e devolve os bytes do PDF do recibo.
func (uc *ReciboUseCase) Gerar(ctx context.Context, pedidoID string) ([]byte, error) {
	pedido, err := uc.pedidoRepo.GetByID(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return uc.generator.GerarReciboPedido(ctx, pedido)
}
