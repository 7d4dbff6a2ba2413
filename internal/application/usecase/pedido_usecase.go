package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

// PedidoUseCase casos de uso de pedidos (criação e consulta; pedidos são
// imutáveis depois de criados).
type PedidoUseCase struct {
	pedidoRepo  repository.PedidoRepository
	clienteRepo repository.ClienteRepository
}

// NewPedidoUseCase constrói o caso de uso.
func NewPedidoUseCase(pedidoRepo repository.PedidoRepository, clienteRepo repository.ClienteRepository) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, clienteRepo: clienteRepo}
}

// Create registra a venda com id e data atribuídos pelo servidor.
//
// Se cliente_id vier preenchido, nome/telefone/endereço do cliente são
// copiados para o pedido no ato (snapshot desnormalizado): relatórios
// históricos leem o snapshot, nunca o cadastro vivo. Cliente inexistente não
// é erro — o pedido sai sem snapshot, como no fluxo de balcão sem cadastro.
func (uc *PedidoUseCase) Create(ctx context.Context, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	pedido := &entity.Pedido{
		ID:         uuid.NewString(),
		DataPedido: agoraISO(),
		ClienteID:  in.ClienteID,
		TotalItens: in.TotalItens,
		ValorTotal: in.ValorTotal,
		Observacao: in.Observacao,
		Itens:      make([]entity.ItemPedido, 0, len(in.Itens)),
	}
	for _, item := range in.Itens {
		pedido.Itens = append(pedido.Itens, entity.ItemPedido{
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   item.ProdutoNome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
		})
	}

	if in.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(ctx, in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente != nil {
			pedido.ClienteNome = cliente.Nome
			pedido.ClienteTelefone = cliente.Telefone
			pedido.ClienteEndereco = cliente.Endereco
		}
	}

	if err := uc.pedidoRepo.Create(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido), nil
}

// GetByID busca um pedido com seus itens; ErrNaoEncontrado se não existir.
func (uc *PedidoUseCase) GetByID(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return pedidoToResponse(pedido), nil
}

// List lista os pedidos mais recentes primeiro.
func (uc *PedidoUseCase) List(ctx context.Context) ([]*dto.PedidoResponse, error) {
	lista, err := uc.pedidoRepo.List(ctx, listagemMax)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoResponse, 0, len(lista))
	for _, p := range lista {
		out = append(out, pedidoToResponse(p))
	}
	return out, nil
}

func pedidoToResponse(p *entity.Pedido) *dto.PedidoResponse {
	itens := make([]dto.ItemPedidoDTO, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, dto.ItemPedidoDTO{
			ProdutoID:     item.ProdutoID,
			ProdutoNome:   item.ProdutoNome,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			ValorTotal:    item.ValorTotal,
		})
	}
	return &dto.PedidoResponse{
		ID:              p.ID,
		DataPedido:      p.DataPedido,
		ClienteID:       p.ClienteID,
		ClienteNome:     p.ClienteNome,
		ClienteTelefone: p.ClienteTelefone,
		ClienteEndereco: p.ClienteEndereco,
		TotalItens:      p.TotalItens,
		ValorTotal:      p.ValorTotal,
		Observacao:      p.Observacao,
		Itens:           itens,
	}
}
