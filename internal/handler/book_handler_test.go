package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"librosml-pc5/internal/recommender"
	"librosml-pc5/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookHandler(t *testing.T) *BookHandler {
	t.Helper()
	engine := recommender.NewEngine("/no/existe/Books.csv", "/no/existe/Ratings.csv")
	engine.Load()
	return NewBookHandler(service.NewBookService(engine))
}

func getBooks(t *testing.T, h http.HandlerFunc, url string) []string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Books []string `json:"books"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Books
}

func TestBookSearchHandler(t *testing.T) {
	h := newTestBookHandler(t)

	books := getBooks(t, h.Search, "/books/search?q=lord")
	assert.Contains(t, books, "The Lord of the Rings")
	assert.NotContains(t, books, "Gone Girl")

	// sin query: prefijo acotado del catálogo
	all := getBooks(t, h.Search, "/books/search")
	assert.Len(t, all, 38)

	none := getBooks(t, h.Search, "/books/search?q=zzzzzz")
	assert.Empty(t, none)
}

func TestBookAllHandler(t *testing.T) {
	h := newTestBookHandler(t)

	books := getBooks(t, h.All, "/books")
	assert.Len(t, books, 38)
	assert.Contains(t, books, "The Great Gatsby")
}
