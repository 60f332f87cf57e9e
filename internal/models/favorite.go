package models

// FavoriteDoc es un favorito de usuario en Mongo (uno por userId+bookTitle).
type FavoriteDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	BookTitle string `json:"bookTitle" bson:"bookTitle"`
	AddedAt   int64  `json:"addedAt" bson:"addedAt"` // epoch
}
