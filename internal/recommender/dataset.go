package recommender

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// Lectura de los CSV estilo Book-Crossing (latin-1, comillas sueltas,
// filas malformadas que se saltan en vez de tumbar la carga).

// BookRow es una fila cruda de Books.csv.
type BookRow struct {
	ISBN      string
	Title     string
	Author    string
	Year      string
	Publisher string
}

// RatingRow es una fila cruda de Ratings.csv.
type RatingRow struct {
	UserID int
	ISBN   string
	Rating int
}

// newCSVReader abre el archivo decodificando latin-1 y tolerando filas con
// número variable de campos.
func newCSVReader(f *os.File) *csv.Reader {
	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

// headerIndex ubica las columnas que nos interesan por nombre.
func headerIndex(header []string, cols ...string) (map[string]int, error) {
	idx := make(map[string]int, len(cols))
	for i, h := range header {
		idx[h] = i
	}
	out := make(map[string]int, len(cols))
	for _, c := range cols {
		i, ok := idx[c]
		if !ok {
			return nil, fmt.Errorf("columna %q no encontrada en el header", c)
		}
		out[c] = i
	}
	return out, nil
}

// maxIdx: índice de columna más alto que necesita una fila para ser usable.
func maxIdx(cols map[string]int) int {
	m := 0
	for _, i := range cols {
		if i > m {
			m = i
		}
	}
	return m
}

// LoadBooksCSV lee el catálogo de libros. Filas sin ISBN o título se saltan.
func LoadBooksCSV(path string) ([]BookRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newCSVReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo header de %s: %w", path, err)
	}
	cols, err := headerIndex(header, "ISBN", "Book-Title", "Book-Author", "Year-Of-Publication", "Publisher")
	if err != nil {
		return nil, err
	}

	need := maxIdx(cols)
	var books []BookRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// fila malformada, seguimos
			continue
		}
		if len(rec) <= need {
			continue
		}
		b := BookRow{
			ISBN:      rec[cols["ISBN"]],
			Title:     rec[cols["Book-Title"]],
			Author:    rec[cols["Book-Author"]],
			Year:      rec[cols["Year-Of-Publication"]],
			Publisher: rec[cols["Publisher"]],
		}
		if b.ISBN == "" || b.Title == "" {
			continue
		}
		books = append(books, b)
	}

	if len(books) == 0 {
		return nil, fmt.Errorf("%s no tiene filas válidas", path)
	}
	return books, nil
}

// LoadRatingsCSV lee la tabla de ratings. Filas con user o rating no numérico
// se saltan.
func LoadRatingsCSV(path string) ([]RatingRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := newCSVReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo header de %s: %w", path, err)
	}
	cols, err := headerIndex(header, "User-ID", "ISBN", "Book-Rating")
	if err != nil {
		return nil, err
	}

	need := maxIdx(cols)
	var ratings []RatingRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(rec) <= need {
			continue
		}
		userID, err := strconv.Atoi(rec[cols["User-ID"]])
		if err != nil {
			continue
		}
		rating, err := strconv.Atoi(rec[cols["Book-Rating"]])
		if err != nil {
			continue
		}
		isbn := rec[cols["ISBN"]]
		if isbn == "" {
			continue
		}
		ratings = append(ratings, RatingRow{UserID: userID, ISBN: isbn, Rating: rating})
	}

	if len(ratings) == 0 {
		return nil, fmt.Errorf("%s no tiene filas válidas", path)
	}
	return ratings, nil
}
