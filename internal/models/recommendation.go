package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecBook es un resultado de recomendación ya proyectado con metadata.
type RecBook struct {
	Title      string  `bson:"title"      json:"title"`
	Author     string  `bson:"author"     json:"author"`
	Year       string  `bson:"year"       json:"year"`
	Similarity float64 `bson:"similarity" json:"similarity"`
}

// RecHistory guarda cada corrida de recomendación en Mongo.
type RecHistory struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        int                `bson:"userId,omitempty" json:"userId,omitempty"`
	Query         string             `bson:"query"         json:"query"`
	ResolvedTitle string             `bson:"resolvedTitle" json:"resolvedTitle"`
	K             int                `bson:"k"             json:"k"`
	Items         []RecBook          `bson:"items"         json:"items"`
	CreatedAt     time.Time          `bson:"createdAt"     json:"createdAt"`
}

// EngineSummary es lo que expone /admin/engine/summary.
type EngineSummary struct {
	Titles   int       `json:"titles"`
	Users    int       `json:"users"`
	Source   string    `json:"source"` // "csv" | "synthetic"
	LoadedAt time.Time `json:"loadedAt"`
}
