package recommender

import (
	"fmt"
	"sort"

	"librosml-pc5/internal/models"
)

const (
	// MinUserRatings: un usuario entra solo si tiene MÁS de este número de ratings.
	MinUserRatings = 200
	// MinTitleRatings: un título entra solo si junta al menos este número de ratings.
	MinTitleRatings = 50
)

// Matrix es la tabla título×usuario ya pivoteada. El orden de filas es el
// espacio canónico de ids: fila i <=> Titles[i]. Inmutable después de construida.
type Matrix struct {
	Titles []string
	Users  []int
	Data   [][]float64

	rowByTitle map[string]int
}

// NewMatrix arma la matriz a partir de filas ya pivoteadas.
func NewMatrix(titles []string, users []int, data [][]float64) *Matrix {
	rowByTitle := make(map[string]int, len(titles))
	for i, t := range titles {
		rowByTitle[t] = i
	}
	return &Matrix{
		Titles:     titles,
		Users:      users,
		Data:       data,
		rowByTitle: rowByTitle,
	}
}

func (m *Matrix) Rows() int { return len(m.Titles) }

func (m *Matrix) Row(i int) []float64 { return m.Data[i] }

func (m *Matrix) TitleAt(i int) string { return m.Titles[i] }

// RowByTitle devuelve la fila de un título (match exacto).
func (m *Matrix) RowByTitle(title string) (int, bool) {
	i, ok := m.rowByTitle[title]
	return i, ok
}

type userTitle struct {
	user  int
	title string
}

// Build aplica los filtros de actividad/popularidad y pivotea las tripletas
// crudas a la matriz título×usuario, más la tabla de metadata por título.
//
// Pasos (mismo pipeline que el notebook original):
//  1. usuarios con más de MinUserRatings ratings
//  2. join ratings×books por ISBN (ratings sin libro se descartan)
//  3. títulos con al menos MinTitleRatings ratings sobrevivientes
//  4. dedup (usuario, título), gana la primera ocurrencia
//  5. pivot con 0 = sin rating (títulos y usuarios ordenados)
func Build(ratings []RatingRow, books []BookRow) (*Matrix, map[string]models.Book, error) {
	// 1) actividad por usuario sobre los ratings crudos
	perUser := make(map[int]int)
	for _, r := range ratings {
		perUser[r.UserID]++
	}

	// 2) join por ISBN
	byISBN := make(map[string]BookRow, len(books))
	for _, b := range books {
		if _, ok := byISBN[b.ISBN]; !ok {
			byISBN[b.ISBN] = b
		}
	}

	var joined []models.RatingRecord
	for _, r := range ratings {
		if perUser[r.UserID] <= MinUserRatings {
			continue
		}
		b, ok := byISBN[r.ISBN]
		if !ok {
			continue
		}
		joined = append(joined, models.RatingRecord{
			UserID: r.UserID,
			Title:  b.Title,
			Rating: r.Rating,
		})
	}

	// 3) popularidad por título (contada ANTES del dedup, como en el original)
	perTitle := make(map[string]int)
	for _, r := range joined {
		perTitle[r.Title]++
	}

	// 4) dedup (usuario, título): gana la primera ocurrencia
	seen := make(map[userTitle]bool)
	var final []models.RatingRecord
	for _, r := range joined {
		if perTitle[r.Title] < MinTitleRatings {
			continue
		}
		key := userTitle{user: r.UserID, title: r.Title}
		if seen[key] {
			continue
		}
		seen[key] = true
		final = append(final, r)
	}

	if len(final) == 0 {
		return nil, nil, fmt.Errorf("no quedaron ratings después de filtrar (usuarios>%d, títulos>=%d)",
			MinUserRatings, MinTitleRatings)
	}

	// 5) pivot: ejes ordenados, 0 = sin rating
	titleSet := make(map[string]bool)
	userSet := make(map[int]bool)
	for _, r := range final {
		titleSet[r.Title] = true
		userSet[r.UserID] = true
	}

	titles := make([]string, 0, len(titleSet))
	for t := range titleSet {
		titles = append(titles, t)
	}
	sort.Strings(titles)

	users := make([]int, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Ints(users)

	rowIdx := make(map[string]int, len(titles))
	for i, t := range titles {
		rowIdx[t] = i
	}
	colIdx := make(map[int]int, len(users))
	for j, u := range users {
		colIdx[u] = j
	}

	data := make([][]float64, len(titles))
	for i := range data {
		data[i] = make([]float64, len(users))
	}
	for _, r := range final {
		data[rowIdx[r.Title]][colIdx[r.UserID]] = float64(r.Rating)
	}

	// metadata por título sobre el catálogo completo, gana la primera ocurrencia
	meta := make(map[string]models.Book, len(books))
	for _, b := range books {
		if _, ok := meta[b.Title]; ok {
			continue
		}
		meta[b.Title] = models.Book{
			Title:     b.Title,
			Author:    b.Author,
			Year:      b.Year,
			Publisher: b.Publisher,
		}
	}

	return NewMatrix(titles, users, data), meta, nil
}
