package repository

import (
	"context"
	"time"

	"librosml-pc5/internal/db"
	"librosml-pc5/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{col: db.DB().Collection("favorites")}
}

// UpsertFavorite agrega un favorito; si ya existe solo refresca addedAt.
func (r *FavoriteRepository) UpsertFavorite(ctx context.Context, userID int, bookTitle string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "bookTitle": bookTitle},
		bson.M{"$set": bson.M{
			// guardamos epoch (int64)
			"addedAt": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetByUser devuelve los favoritos del usuario, más recientes primero.
func (r *FavoriteRepository) GetByUser(ctx context.Context, userID int) ([]models.FavoriteDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.FavoriteDoc{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		fd := models.FavoriteDoc{
			UserID:    asInt(raw["userId"]),
			BookTitle: asString(raw["bookTitle"]),
			AddedAt:   asInt64(raw["addedAt"]),
		}
		out = append(out, fd)
	}
	return out, cur.Err()
}

// Delete borra un favorito puntual del usuario.
func (r *FavoriteRepository) Delete(ctx context.Context, userID int, bookTitle string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"userId": userID, "bookTitle": bookTitle})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// helpers de casteo seguro
func asInt(v any) int {
	switch x := v.(type) {
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		return int(x)
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
