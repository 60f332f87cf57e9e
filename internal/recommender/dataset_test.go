package recommender

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadBooksCSVLatin1(t *testing.T) {
	// "Saint-Exupéry" con é en latin-1 (0xE9)
	data := []byte("ISBN,Book-Title,Book-Author,Year-Of-Publication,Publisher\n" +
		"b1,The Little Prince,Antoine de Saint-Exup\xe9ry,1943,Reynal\n")

	books, err := LoadBooksCSV(writeFile(t, "Books.csv", data))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Antoine de Saint-Exupéry", books[0].Author)
}

func TestLoadBooksCSVSkipsMalformedRows(t *testing.T) {
	data := []byte("ISBN,Book-Title,Book-Author,Year-Of-Publication,Publisher\n" +
		"b1,Dune,Frank Herbert,1965,Chilton\n" +
		"fila,rota\n" + // pocos campos
		",Sin ISBN,Autor,2000,Editorial\n" + // ISBN vacío
		"b2,,Autor,2000,Editorial\n" + // título vacío
		"b3,Hyperion,Dan Simmons,1989,Doubleday\n")

	books, err := LoadBooksCSV(writeFile(t, "Books.csv", data))
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Hyperion", books[1].Title)
}

func TestLoadRatingsCSVSkipsMalformedRows(t *testing.T) {
	data := []byte("User-ID,ISBN,Book-Rating\n" +
		"1,b1,5\n" +
		"no-numerico,b1,5\n" +
		"2,b1,alto\n" +
		"3,,7\n" +
		"4,b2,8\n")

	ratings, err := LoadRatingsCSV(writeFile(t, "Ratings.csv", data))
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, RatingRow{UserID: 1, ISBN: "b1", Rating: 5}, ratings[0])
	assert.Equal(t, RatingRow{UserID: 4, ISBN: "b2", Rating: 8}, ratings[1])
}

func TestLoadBooksCSVMissingColumn(t *testing.T) {
	data := []byte("ISBN,Titulo\nb1,Dune\n")

	_, err := LoadBooksCSV(writeFile(t, "Books.csv", data))
	assert.Error(t, err)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadBooksCSV("/no/existe/Books.csv")
	assert.Error(t, err)

	_, err = LoadRatingsCSV("/no/existe/Ratings.csv")
	assert.Error(t, err)
}
