package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"librosml-pc5/internal/recommender"
	"librosml-pc5/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommendHandler(t *testing.T) *RecommendHandler {
	t.Helper()
	engine := recommender.NewEngine("/no/existe/Books.csv", "/no/existe/Ratings.csv")
	engine.Load()
	return NewRecommendHandler(service.NewRecommendService(engine, nil))
}

func postRecommend(t *testing.T, h *RecommendHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/books/recommend", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)
	return rec
}

func TestRecommendHandlerOK(t *testing.T) {
	h := newTestRecommendHandler(t)

	rec := postRecommend(t, h, `{"bookName":"the great gatsby","n":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.RecResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The Great Gatsby", resp.Book)
	assert.Len(t, resp.Recommendations, 3)
}

func TestRecommendHandlerDefaultK(t *testing.T) {
	h := newTestRecommendHandler(t)

	rec := postRecommend(t, h, `{"bookName":"Gone Girl"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.RecResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Recommendations, service.DefaultK)
}

func TestRecommendHandlerBadRequests(t *testing.T) {
	h := newTestRecommendHandler(t)

	assert.Equal(t, http.StatusBadRequest, postRecommend(t, h, `{"n":5}`).Code)
	assert.Equal(t, http.StatusBadRequest, postRecommend(t, h, `{"bookName":"Dune","n":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, postRecommend(t, h, `{"bookName":"Dune","n":-1}`).Code)
	assert.Equal(t, http.StatusBadRequest, postRecommend(t, h, `no es json`).Code)
}

func TestRecommendHandlerNotFound(t *testing.T) {
	h := newTestRecommendHandler(t)

	rec := postRecommend(t, h, `{"bookName":"Nonexistent Title XYZ","n":5}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Message     string   `json:"message"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Nonexistent Title XYZ")
	assert.NotEmpty(t, resp.Suggestions)
	assert.LessOrEqual(t, len(resp.Suggestions), 10)
}
