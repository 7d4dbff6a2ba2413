// Package usecase contém os casos de uso de cadastro do PDV: clientes,
// produtos e pedidos.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

// listagemMax teto de registros em listagens de cadastro.
const listagemMax = 1000

// agoraISO devolve o timestamp corrente em ISO-8601 UTC.
// O formato ordena lexicograficamente, que é o contrato das chaves de
// dia/mês do motor de relatórios.
func agoraISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// ClienteUseCase casos de uso de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um cliente com id e data de cadastro atribuídos pelo servidor.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &entity.Cliente{
		ID:           uuid.NewString(),
		Nome:         in.Nome,
		Telefone:     in.Telefone,
		Email:        in.Email,
		Endereco:     in.Endereco,
		Sexo:         in.Sexo,
		Observacao:   in.Observacao,
		DataCadastro: agoraISO(),
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// GetByID busca um cliente; ErrNaoEncontrado se não existir.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return clienteToResponse(cliente), nil
}

// List lista clientes; search filtra por nome, telefone ou email.
func (uc *ClienteUseCase) List(ctx context.Context, search string) ([]*dto.ClienteResponse, error) {
	lista, err := uc.repo.List(ctx, search, listagemMax)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(lista))
	for _, c := range lista {
		out = append(out, clienteToResponse(c))
	}
	return out, nil
}

// Update substitui os dados cadastrais do cliente (data_cadastro preservada).
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNaoEncontrado
	}
	atual.Nome = in.Nome
	atual.Telefone = in.Telefone
	atual.Email = in.Email
	atual.Endereco = in.Endereco
	atual.Sexo = in.Sexo
	atual.Observacao = in.Observacao
	if err := uc.repo.Update(ctx, atual); err != nil {
		return nil, err
	}
	return clienteToResponse(atual), nil
}

// Delete exclui um cliente; ErrNaoEncontrado se não existir.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(ctx, id)
}

func clienteToResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Telefone:     c.Telefone,
		Email:        c.Email,
		Endereco:     c.Endereco,
		Sexo:         c.Sexo,
		Observacao:   c.Observacao,
		DataCadastro: c.DataCadastro,
	}
}
