package models

// Book es la metadata de un título, una entrada por título (dedup por title).
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Year      string `json:"year"`
	Publisher string `json:"publisher"`
}

// RatingRecord es la tripleta (usuario, título, rating) ya normalizada,
// solo vive durante la construcción de la matriz.
type RatingRecord struct {
	UserID int
	Title  string
	Rating int
}
