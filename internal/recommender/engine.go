package recommender

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"librosml-pc5/internal/models"
)

const (
	// SearchLimit: máximo de resultados de búsqueda por substring.
	SearchLimit = 20
	// BrowseLimit: máximo de títulos devueltos cuando la búsqueda viene vacía.
	BrowseLimit = 50
	// SuggestionLimit: muestra de títulos que acompaña un TitleNotFound.
	SuggestionLimit = 10
)

const (
	SourceCSV       = "csv"
	SourceSynthetic = "synthetic"
)

// TitleNotFoundError: la consulta no resolvió a ningún título. Lleva una
// muestra acotada de títulos válidos para que el usuario afine la búsqueda.
type TitleNotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *TitleNotFoundError) Error() string {
	return fmt.Sprintf("book %q not found", e.Query)
}

// estado cargado del motor: matriz + índice + metadata. Se construye completo
// y recién ahí se publica, nunca se muta después. Las lecturas concurrentes
// comparten el mismo puntero sin coordinación.
type engineState struct {
	matrix   *Matrix
	index    *KNNIndex
	books    map[string]models.Book
	source   string
	loadedAt time.Time
}

// Engine es el motor de recomendaciones: carga una vez, solo lectura después.
type Engine struct {
	booksCSV   string
	ratingsCSV string

	mu sync.RWMutex
	st *engineState
}

func NewEngine(booksCSV, ratingsCSV string) *Engine {
	return &Engine{booksCSV: booksCSV, ratingsCSV: ratingsCSV}
}

// Load construye todo el estado (matriz, índice, metadata) y lo publica de un
// golpe. Si los CSV fallan por lo que sea, cae al dataset sintético: el
// servicio nunca se queda sin motor por falta de datos. Volver a llamar Load
// reconstruye y swapea, las consultas en vuelo siguen viendo el estado viejo.
func (e *Engine) Load() {
	st, err := e.loadFromCSV()
	if err != nil {
		log.Printf("[engine] no se pudo cargar datos reales: %v", err)
		log.Println("[engine] usando dataset sintético de demostración")
		matrix, books := BuildSynthetic()
		st = &engineState{
			matrix:   matrix,
			index:    FitKNN(matrix),
			books:    books,
			source:   SourceSynthetic,
			loadedAt: time.Now(),
		}
	}

	e.mu.Lock()
	e.st = st
	e.mu.Unlock()

	log.Printf("[engine] cargado: %d títulos × %d usuarios (source=%s)",
		st.matrix.Rows(), len(st.matrix.Users), st.source)
}

func (e *Engine) loadFromCSV() (*engineState, error) {
	books, err := LoadBooksCSV(e.booksCSV)
	if err != nil {
		return nil, err
	}
	ratings, err := LoadRatingsCSV(e.ratingsCSV)
	if err != nil {
		return nil, err
	}

	matrix, meta, err := Build(ratings, books)
	if err != nil {
		return nil, err
	}

	return &engineState{
		matrix:   matrix,
		index:    FitKNN(matrix),
		books:    meta,
		source:   SourceCSV,
		loadedAt: time.Now(),
	}, nil
}

func (e *Engine) state() *engineState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.st
}

// ResolveTitle resuelve una consulta al título canónico de la matriz.
func (e *Engine) ResolveTitle(query string) (string, bool) {
	st := e.state()
	if st == nil {
		return "", false
	}
	row, ok := Resolve(query, st.matrix.Titles)
	if !ok {
		return "", false
	}
	return st.matrix.TitleAt(row), true
}

// Recommend resuelve el título y proyecta los k vecinos más cercanos a
// resultados con metadata, ordenados por similitud descendente.
func (e *Engine) Recommend(bookName string, k int) ([]models.RecBook, error) {
	if bookName == "" {
		return nil, fmt.Errorf("book name is required")
	}
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1")
	}
	st := e.state()
	if st == nil {
		return nil, fmt.Errorf("engine not loaded")
	}

	row, ok := Resolve(bookName, st.matrix.Titles)
	if !ok {
		return nil, &TitleNotFoundError{
			Query:       bookName,
			Suggestions: headOf(st.matrix.Titles, SuggestionLimit),
		}
	}

	// k+1 porque la propia fila sale primera con distancia 0
	neighbors := st.index.Neighbors(row, k+1)

	results := make([]models.RecBook, 0, k)
	for _, n := range neighbors {
		if n.Row == row {
			continue // self-match
		}
		if len(results) == k {
			break
		}
		title := st.matrix.TitleAt(n.Row)
		rec := models.RecBook{
			Title:  title,
			Author: "Unknown",
			Year:   "N/A",
			// la distancia coseno puede pasarse de 1 por ruido de flotantes
			Similarity: max(0, 1-n.Dist),
		}
		if b, ok := st.books[title]; ok {
			rec.Author = b.Author
			rec.Year = b.Year
		}
		results = append(results, rec)
	}

	return results, nil
}

// Search busca títulos por substring (sin distinguir mayúsculas), tope
// SearchLimit. Consulta vacía devuelve los primeros BrowseLimit títulos.
func (e *Engine) Search(query string) []string {
	st := e.state()
	if st == nil {
		return []string{}
	}
	if query == "" {
		return headOf(st.matrix.Titles, BrowseLimit)
	}

	q := strings.ToLower(query)
	matches := make([]string, 0, SearchLimit)
	for _, t := range st.matrix.Titles {
		if strings.Contains(strings.ToLower(t), q) {
			matches = append(matches, t)
			if len(matches) == SearchLimit {
				break
			}
		}
	}
	return matches
}

// AllTitles devuelve todos los títulos en orden de fila.
func (e *Engine) AllTitles() []string {
	st := e.state()
	if st == nil {
		return []string{}
	}
	out := make([]string, len(st.matrix.Titles))
	copy(out, st.matrix.Titles)
	return out
}

// Summary para el endpoint de admin.
func (e *Engine) Summary() models.EngineSummary {
	st := e.state()
	if st == nil {
		return models.EngineSummary{}
	}
	return models.EngineSummary{
		Titles:   st.matrix.Rows(),
		Users:    len(st.matrix.Users),
		Source:   st.source,
		LoadedAt: st.loadedAt,
	}
}

func headOf(titles []string, n int) []string {
	if len(titles) < n {
		n = len(titles)
	}
	out := make([]string, n)
	copy(out, titles[:n])
	return out
}
