package recommender

import (
	"math"
	"sort"
)

// Neighbor es un vecino devuelto por el índice: fila + distancia coseno.
type Neighbor struct {
	Row  int
	Dist float64
}

// KNNIndex es el índice de vecinos más cercanos sobre las filas de la matriz.
// Fuerza bruta con distancia coseno (1 - similitud), exacto. Con decenas o
// miles de títulos el barrido completo sale barato y no hay parámetros que
// calibrar. Se ajusta una vez por carga, solo lectura después.
type KNNIndex struct {
	m     *Matrix
	norms []float64
}

// FitKNN precalcula las normas de cada fila.
func FitKNN(m *Matrix) *KNNIndex {
	norms := make([]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		norms[i] = norm(m.Row(i))
	}
	return &KNNIndex{m: m, norms: norms}
}

// Neighbors devuelve los k vecinos más cercanos a la fila `row`, distancia
// ascendente, empates por índice de fila. La propia fila sale con distancia 0,
// el caller decide si la descarta. k se recorta al número de filas.
func (ix *KNNIndex) Neighbors(row, k int) []Neighbor {
	n := ix.m.Rows()
	if k > n {
		k = n
	}
	if k <= 0 || row < 0 || row >= n {
		return nil
	}

	all := make([]Neighbor, n)
	q := ix.m.Row(row)
	for j := 0; j < n; j++ {
		all[j] = Neighbor{
			Row:  j,
			Dist: cosineDistance(q, ix.m.Row(j), ix.norms[row], ix.norms[j]),
		}
	}

	sort.SliceStable(all, func(a, b int) bool {
		if all[a].Dist != all[b].Dist {
			return all[a].Dist < all[b].Dist
		}
		return all[a].Row < all[b].Row
	})

	return all[:k]
}

func norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

// cosineDistance = 1 - cos(a,b). Vectores de norma cero quedan a distancia 1
// de todo (no hay dirección que comparar).
func cosineDistance(a, b []float64, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 1
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return 1 - dot/(na*nb)
}
