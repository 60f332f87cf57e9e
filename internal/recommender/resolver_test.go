package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolverTitles = []string{
	"The Great Gatsby",
	"Dune",
	"Dune Messiah",
	"Gone Girl",
	"The Lord of the Rings",
}

func TestResolveExact(t *testing.T) {
	row, ok := Resolve("Dune", resolverTitles)
	require.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestResolveCaseInsensitive(t *testing.T) {
	row, ok := Resolve("dune", resolverTitles)
	require.True(t, ok)
	// nivel 2 resuelve a "Dune", no a "Dune Messiah" (que también matchearía
	// por substring en el nivel 3)
	assert.Equal(t, 1, row)
}

func TestResolveSubstring(t *testing.T) {
	row, ok := Resolve("messiah", resolverTitles)
	require.True(t, ok)
	assert.Equal(t, 2, row)
}

func TestResolveTokenOverlap(t *testing.T) {
	// ningún título contiene la consulta completa, pero el token "rings" sí
	// es substring de un título
	row, ok := Resolve("rings trilogy omnibus", resolverTitles)
	require.True(t, ok)
	assert.Equal(t, 4, row)
}

func TestResolveTierOrder(t *testing.T) {
	// "Dune" matchea exacto en fila 1 y por substring en fila 2: gana el
	// nivel exacto
	row, ok := Resolve("Dune", resolverTitles)
	require.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestResolveFirstRowWinsWithinTier(t *testing.T) {
	titles := []string{"Dune Messiah", "Dune"}
	// substring: las dos filas contienen "dune", gana la primera en orden de
	// matriz
	row, ok := Resolve("dun", titles)
	require.True(t, ok)
	assert.Equal(t, 0, row)
}

func TestResolveNotFound(t *testing.T) {
	_, ok := Resolve("zzzzzz", resolverTitles)
	assert.False(t, ok)
}

func TestResolveIdempotent(t *testing.T) {
	row, ok := Resolve("gone girl", resolverTitles)
	require.True(t, ok)

	// resolver el título canónico devuelto debe acertar en el nivel exacto
	again, ok := Resolve(resolverTitles[row], resolverTitles)
	require.True(t, ok)
	assert.Equal(t, row, again)
}
