package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso do catálogo de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um produto com id e o próximo código sequencial (cp).
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	cp, err := uc.repo.NextCP(ctx)
	if err != nil {
		return nil, err
	}
	produto := &entity.Produto{
		ID:               uuid.NewString(),
		CP:               cp,
		Nome:             in.Nome,
		Tipo:             in.Tipo,
		Porcionamento:    in.Porcionamento,
		QtdPorcionamento: in.QtdPorcionamento,
		ValorUnitario:    in.ValorUnitario,
		EstoqueAtual:     in.EstoqueAtual,
	}
	if err := uc.repo.Create(ctx, produto); err != nil {
		return nil, err
	}
	return produtoToResponse(produto), nil
}

// GetByID busca um produto; ErrNaoEncontrado se não existir.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return produtoToResponse(produto), nil
}

// GetByCP busca um produto pelo código sequencial de exibição.
func (uc *ProdutoUseCase) GetByCP(ctx context.Context, cp int) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByCP(ctx, cp)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return produtoToResponse(produto), nil
}

// List lista o catálogo ordenado por cp; search filtra por nome e tipo por
// categoria exata.
func (uc *ProdutoUseCase) List(ctx context.Context, search, tipo string) ([]*dto.ProdutoResponse, error) {
	lista, err := uc.repo.List(ctx, search, tipo, listagemMax)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(lista))
	for _, p := range lista {
		out = append(out, produtoToResponse(p))
	}
	return out, nil
}

// Update substitui os dados do produto (id e cp preservados).
func (uc *ProdutoUseCase) Update(ctx context.Context, id string, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNaoEncontrado
	}
	atual.Nome = in.Nome
	atual.Tipo = in.Tipo
	atual.Porcionamento = in.Porcionamento
	atual.QtdPorcionamento = in.QtdPorcionamento
	atual.ValorUnitario = in.ValorUnitario
	atual.EstoqueAtual = in.EstoqueAtual
	if err := uc.repo.Update(ctx, atual); err != nil {
		return nil, err
	}
	return produtoToResponse(atual), nil
}

// Delete exclui um produto. O cp não é reaproveitado, então a sequência de
// exibição passa a ter lacunas.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id string) error {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(ctx, id)
}

func produtoToResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:               p.ID,
		CP:               p.CP,
		Nome:             p.Nome,
		Tipo:             p.Tipo,
		Porcionamento:    p.Porcionamento,
		QtdPorcionamento: p.QtdPorcionamento,
		ValorUnitario:    p.ValorUnitario,
		EstoqueAtual:     p.EstoqueAtual,
	}
}
