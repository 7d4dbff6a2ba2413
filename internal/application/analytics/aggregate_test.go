package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdurao/pos-api/internal/application/analytics"
)

type metTeste struct {
	Valor decimal.Decimal
}

func valor(m *metTeste) decimal.Decimal { return m.Valor }

func somar(ac *analytics.Acumulador[metTeste], chave string, v int64) {
	m := ac.Obter(chave)
	m.Valor = m.Valor.Add(decimal.NewFromInt(v))
}

// O primeiro encontro define a ordem das entradas; Obter de chave repetida
// atualiza o mesmo registro.
func TestAcumulador_OrdemDePrimeiroEncontro(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	somar(ac, "b", 1)
	somar(ac, "a", 2)
	somar(ac, "b", 3)

	require.Equal(t, 2, ac.Len())
	entradas := ac.Entradas()
	assert.Equal(t, "b", entradas[0].Chave)
	assert.Equal(t, "a", entradas[1].Chave)
	assert.True(t, entradas[0].Metricas.Valor.Equal(decimal.NewFromInt(4)),
		"chave repetida deve acumular no mesmo registro")
}

func TestAcumulador_ObterCriaZerado(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	m := ac.Obter("x")
	assert.True(t, m.Valor.IsZero(), "registro novo deve nascer zerado")
}

func TestAcumulador_OrdenarPorChave(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	somar(ac, "2025-03", 1)
	somar(ac, "2025-01", 1)
	somar(ac, "2025-02", 1)

	ac.OrdenarPorChave()

	chaves := make([]string, 0, ac.Len())
	for _, e := range ac.Entradas() {
		chaves = append(chaves, e.Chave)
	}
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, chaves)
}

// Empate na métrica preserva a ordem do primeiro encontro (ordenação estável).
func TestAcumulador_OrdenarPorMetricaDesc_EmpateEstavel(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	somar(ac, "tomate", 5)
	somar(ac, "alface", 10)
	somar(ac, "cebola", 10)

	ac.OrdenarPorMetricaDesc(valor)

	entradas := ac.Entradas()
	assert.Equal(t, "alface", entradas[0].Chave)
	assert.Equal(t, "cebola", entradas[1].Chave, "empate deve manter quem apareceu primeiro na frente")
	assert.Equal(t, "tomate", entradas[2].Chave)
}

func TestAcumulador_TopN(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	somar(ac, "a", 1)
	somar(ac, "b", 3)
	somar(ac, "c", 2)

	top := ac.TopN(valor, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Chave)
	assert.Equal(t, "c", top[1].Chave)
}

// N maior que o número de chaves devolve tudo; N <= 0 idem.
func TestAcumulador_TopN_LimiteMaiorQueConjunto(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	somar(ac, "a", 1)
	somar(ac, "b", 2)

	assert.Len(t, ac.TopN(valor, 10), 2)
	assert.Len(t, ac.TopN(valor, 0), 2)
}

func TestAcumulador_Maior(t *testing.T) {
	ac := analytics.NovoAcumulador[metTeste]()
	assert.Nil(t, ac.Maior(valor), "acumulador vazio não tem maior")

	somar(ac, "a", 7)
	somar(ac, "b", 7)
	somar(ac, "c", 3)

	melhor := ac.Maior(valor)
	require.NotNil(t, melhor)
	assert.Equal(t, "a", melhor.Chave, "empate fica com a primeira chave encontrada")
}
