package service

import (
	"context"
	"testing"

	"librosml-pc5/internal/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// motor sintético, sin Mongo ni Redis (el repo de historial es opcional y el
// cache nil-guardea)
func newTestService(t *testing.T) *RecommendService {
	t.Helper()
	engine := recommender.NewEngine("/no/existe/Books.csv", "/no/existe/Ratings.csv")
	engine.Load()
	return NewRecommendService(engine, nil)
}

func TestRecommendDefaultK(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Recommend(context.Background(), RecRequest{BookName: "The Great Gatsby"})
	require.NoError(t, err)
	assert.Equal(t, "The Great Gatsby", res.Book)
	assert.Len(t, res.Recommendations, DefaultK)
}

func TestRecommendMaxKCap(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Recommend(context.Background(), RecRequest{BookName: "The Great Gatsby", K: 1000})
	require.NoError(t, err)
	// MaxK = 50 pero el dataset sintético solo tiene 37 vecinos posibles
	assert.LessOrEqual(t, len(res.Recommendations), MaxK)
	assert.Len(t, res.Recommendations, 37)
}

func TestRecommendResolvesFuzzyTitle(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Recommend(context.Background(), RecRequest{BookName: "gone girl", K: 3})
	require.NoError(t, err)
	assert.Equal(t, "Gone Girl", res.Book)
	assert.Len(t, res.Recommendations, 3)
	for _, r := range res.Recommendations {
		assert.NotEqual(t, "Gone Girl", r.Title)
	}
}

func TestRecommendNotFoundPassthrough(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend(context.Background(), RecRequest{BookName: "Nonexistent Title XYZ", K: 5})
	require.Error(t, err)

	nf, ok := IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, "Nonexistent Title XYZ", nf.Query)
	assert.NotEmpty(t, nf.Suggestions)
	assert.LessOrEqual(t, len(nf.Suggestions), 10)
}

func TestRecommendEmptyBookName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend(context.Background(), RecRequest{BookName: ""})
	assert.Error(t, err)

	_, ok := IsNotFound(err)
	assert.False(t, ok)
}
