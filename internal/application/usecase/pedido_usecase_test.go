package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdurao/pos-api/internal/application/dto"
	"github.com/verdurao/pos-api/internal/application/usecase"
	"github.com/verdurao/pos-api/internal/domain"
	"github.com/verdurao/pos-api/internal/domain/entity"
	"github.com/verdurao/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type clienteRepoFake struct {
	clientes map[string]*entity.Cliente
}

func (f *clienteRepoFake) Create(ctx context.Context, c *entity.Cliente) error { return nil }
func (f *clienteRepoFake) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	return f.clientes[id], nil
}
func (f *clienteRepoFake) List(ctx context.Context, search string, limit int) ([]*entity.Cliente, error) {
	return nil, nil
}
func (f *clienteRepoFake) Update(ctx context.Context, c *entity.Cliente) error { return nil }
func (f *clienteRepoFake) Delete(ctx context.Context, id string) error         { return nil }

type pedidoRepoFake struct {
	criados []*entity.Pedido
}

func (f *pedidoRepoFake) Create(ctx context.Context, p *entity.Pedido) error {
	f.criados = append(f.criados, p)
	return nil
}

func (f *pedidoRepoFake) GetByID(ctx context.Context, id string) (*entity.Pedido, error) {
	for _, p := range f.criados {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *pedidoRepoFake) List(ctx context.Context, limit int) ([]*entity.Pedido, error) {
	return f.criados, nil
}

func (f *pedidoRepoFake) ListByFiltro(ctx context.Context, filtro repository.PedidoFiltro) ([]*entity.Pedido, error) {
	return f.criados, nil
}

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func requestBase() dto.CreatePedidoRequest {
	return dto.CreatePedidoRequest{
		TotalItens: dec("2"),
		ValorTotal: dec("25"),
		Itens: []dto.ItemPedidoDTO{
			{ProdutoID: "p1", ProdutoNome: "Tomate", Quantidade: dec("2"), ValorUnitario: dec("12.5"), ValorTotal: dec("25")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// O servidor atribui id e data; o cliente do PDV não manda nenhum dos dois.
func TestPedidoCreate_AtribuiIDEData(t *testing.T) {
	pedidoRepo := &pedidoRepoFake{}
	uc := usecase.NewPedidoUseCase(pedidoRepo, &clienteRepoFake{})

	out, err := uc.Create(context.Background(), requestBase())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.NotEmpty(t, out.DataPedido)
	require.Len(t, pedidoRepo.criados, 1)
	assert.Equal(t, out.ID, pedidoRepo.criados[0].ID)
}

// Com cliente_id o cadastro é copiado para o pedido no ato (snapshot); mudar
// o cadastro depois não muda o pedido.
func TestPedidoCreate_SnapshotDoCliente(t *testing.T) {
	clienteRepo := &clienteRepoFake{clientes: map[string]*entity.Cliente{
		"c1": {ID: "c1", Nome: "Maria", Telefone: "9999-0000", Endereco: "Rua A, 1"},
	}}
	pedidoRepo := &pedidoRepoFake{}
	uc := usecase.NewPedidoUseCase(pedidoRepo, clienteRepo)

	in := requestBase()
	in.ClienteID = "c1"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Maria", out.ClienteNome)
	assert.Equal(t, "9999-0000", out.ClienteTelefone)
	assert.Equal(t, "Rua A, 1", out.ClienteEndereco)

	clienteRepo.clientes["c1"].Nome = "Maria Silva"
	persistido, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", persistido.ClienteNome, "o pedido guarda o snapshot da criação")
}

// Cliente inexistente não é erro: venda de balcão com id solto sai sem
// snapshot.
func TestPedidoCreate_ClienteInexistente(t *testing.T) {
	uc := usecase.NewPedidoUseCase(&pedidoRepoFake{}, &clienteRepoFake{})

	in := requestBase()
	in.ClienteID = "c-fantasma"
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "c-fantasma", out.ClienteID)
	assert.Empty(t, out.ClienteNome)
}

func TestPedidoGetByID_NaoEncontrado(t *testing.T) {
	uc := usecase.NewPedidoUseCase(&pedidoRepoFake{}, &clienteRepoFake{})

	_, err := uc.GetByID(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestPedidoCreate_PreservaOrdemDosItens(t *testing.T) {
	pedidoRepo := &pedidoRepoFake{}
	uc := usecase.NewPedidoUseCase(pedidoRepo, &clienteRepoFake{})

	in := requestBase()
	in.Itens = []dto.ItemPedidoDTO{
		{ProdutoID: "p1", ProdutoNome: "Tomate", Quantidade: dec("1"), ValorTotal: dec("5")},
		{ProdutoID: "p2", ProdutoNome: "Alface", Quantidade: dec("1"), ValorTotal: dec("3")},
		{ProdutoID: "p3", ProdutoNome: "Cebola", Quantidade: dec("1"), ValorTotal: dec("2")},
	}
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, out.Itens, 3)
	assert.Equal(t, "Tomate", out.Itens[0].ProdutoNome)
	assert.Equal(t, "Alface", out.Itens[1].ProdutoNome)
	assert.Equal(t, "Cebola", out.Itens[2].ProdutoNome)
}
