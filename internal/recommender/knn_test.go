package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix() *Matrix {
	// fila 0 y 1 apuntan en direcciones parecidas, la 2 es ortogonal a la 0
	return NewMatrix(
		[]string{"A", "B", "C", "D"},
		[]int{10, 20, 30},
		[][]float64{
			{1, 0, 0},
			{1, 1, 0},
			{0, 0, 1},
			{2, 0, 0}, // misma dirección que la fila 0
		},
	)
}

func TestNeighborsSelfFirst(t *testing.T) {
	ix := FitKNN(testMatrix())

	got := ix.Neighbors(1, 4)
	require.Len(t, got, 4)
	assert.Equal(t, 1, got[0].Row)
	assert.InDelta(t, 0, got[0].Dist, 1e-9)
}

func TestNeighborsAscendingWithRowTieBreak(t *testing.T) {
	ix := FitKNN(testMatrix())

	got := ix.Neighbors(0, 4)
	require.Len(t, got, 4)

	// filas 0 y 3 tienen la misma dirección (distancia 0): empate por índice
	assert.Equal(t, 0, got[0].Row)
	assert.Equal(t, 3, got[1].Row)
	assert.InDelta(t, 0, got[1].Dist, 1e-9)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Dist, got[i].Dist)
	}

	// la ortogonal queda última
	assert.Equal(t, 2, got[3].Row)
	assert.InDelta(t, 1, got[3].Dist, 1e-9)
}

func TestNeighborsKCappedToRows(t *testing.T) {
	ix := FitKNN(testMatrix())

	got := ix.Neighbors(0, 100)
	assert.Len(t, got, 4)
}

func TestNeighborsZeroNormRow(t *testing.T) {
	m := NewMatrix(
		[]string{"A", "Z"},
		[]int{1, 2},
		[][]float64{
			{1, 1},
			{0, 0},
		},
	)
	ix := FitKNN(m)

	// una fila sin ratings queda a distancia 1 de todo
	got := ix.Neighbors(0, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[1].Row)
	assert.InDelta(t, 1, got[1].Dist, 1e-9)
}

func TestCosineDistanceBounds(t *testing.T) {
	a := []float64{3, 0}
	b := []float64{0, 4}
	c := []float64{6, 0}

	assert.InDelta(t, 1, cosineDistance(a, b, norm(a), norm(b)), 1e-9)
	assert.InDelta(t, 0, cosineDistance(a, c, norm(a), norm(c)), 1e-9)
}
