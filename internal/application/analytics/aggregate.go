package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Entrada é um par chave → métricas dentro de um Acumulador.
type Entrada[M any] struct {
	Chave    string
	Metricas *M
}

// Acumulador é o motor genérico de group-by: mapeia chave → registro de
// métricas de formato fixo, criado zerado no primeiro encontro e atualizado
// in place. As entradas preservam a ordem do primeiro encontro, que é o
// desempate definido para rankings (ordenação estável).
type Acumulador[M any] struct {
	indice   map[string]*Entrada[M]
	entradas []*Entrada[M]
}

// NovoAcumulador cria um acumulador vazio.
func NovoAcumulador[M any]() *Acumulador[M] {
	return &Acumulador[M]{indice: make(map[string]*Entrada[M])}
}

// Obter devolve o registro de métricas da chave, criando-o zerado no
// primeiro encontro. Chave ausente nunca vira bucket: quem filtra decide
// antes de chamar Obter.
func (a *Acumulador[M]) Obter(chave string) *M {
	if e, ok := a.indice[chave]; ok {
		return e.Metricas
	}
	e := &Entrada[M]{Chave: chave, Metricas: new(M)}
	a.indice[chave] = e
	a.entradas = append(a.entradas, e)
	return e.Metricas
}

// Len devolve o número de chaves distintas acumuladas.
func (a *Acumulador[M]) Len() int {
	return len(a.entradas)
}

// Entradas devolve as entradas na ordem corrente (primeiro encontro, ou a
// ordem da última chamada de ordenação).
func (a *Acumulador[M]) Entradas() []*Entrada[M] {
	return a.entradas
}

// OrdenarPorChave ordena as entradas por chave ascendente (lexicográfica).
// É a ordenação dos buckets de tempo.
func (a *Acumulador[M]) OrdenarPorChave() {
	sort.SliceStable(a.entradas, func(i, j int) bool {
		return a.entradas[i].Chave < a.entradas[j].Chave
	})
}

// OrdenarPorMetricaDesc ordena as entradas pela métrica indicada, da maior
// para a menor. Empates preservam a ordem do primeiro encontro.
func (a *Acumulador[M]) OrdenarPorMetricaDesc(metrica func(*M) decimal.Decimal) {
	sort.SliceStable(a.entradas, func(i, j int) bool {
		return metrica(a.entradas[i].Metricas).GreaterThan(metrica(a.entradas[j].Metricas))
	})
}

// TopN ordena por métrica descendente e devolve as min(n, |entradas|)
// primeiras. n <= 0 devolve o ranking completo.
func (a *Acumulador[M]) TopN(metrica func(*M) decimal.Decimal, n int) []*Entrada[M] {
	a.OrdenarPorMetricaDesc(metrica)
	if n <= 0 || n >= len(a.entradas) {
		return a.entradas
	}
	return a.entradas[:n]
}

// Maior devolve a entrada com a maior métrica, ou nil se o acumulador está
// vazio. Empate fica com a primeira chave encontrada.
func (a *Acumulador[M]) Maior(metrica func(*M) decimal.Decimal) *Entrada[M] {
	var melhor *Entrada[M]
	for _, e := range a.entradas {
		if melhor == nil || metrica(e.Metricas).GreaterThan(metrica(melhor.Metricas)) {
			melhor = e
		}
	}
	return melhor
}
