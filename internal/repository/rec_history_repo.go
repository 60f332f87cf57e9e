package repository

import (
	"context"

	"librosml-pc5/internal/db"
	"librosml-pc5/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecHistoryRepository guarda el historial de corridas de recomendación.
type RecHistoryRepository struct {
	col *mongo.Collection
}

func NewRecHistoryRepository() *RecHistoryRepository {
	return &RecHistoryRepository{col: db.DB().Collection("rec_history")}
}

func (r *RecHistoryRepository) Insert(ctx context.Context, h *models.RecHistory) error {
	doc := bson.M{
		"query":         h.Query,
		"resolvedTitle": h.ResolvedTitle,
		"k":             h.K,
		"items":         h.Items,
		"createdAt":     h.CreatedAt,
	}
	if h.UserID != 0 {
		doc["userId"] = h.UserID
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// GetByUser lista las últimas corridas de un usuario.
func (r *RecHistoryRepository) GetByUser(ctx context.Context, userID, limit int) ([]models.RecHistory, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecHistory
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
