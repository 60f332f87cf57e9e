package service

import "librosml-pc5/internal/recommender"

// BookService expone el catálogo del motor (búsqueda y listado).
type BookService struct {
	engine *recommender.Engine
}

func NewBookService(engine *recommender.Engine) *BookService {
	return &BookService{engine: engine}
}

// Search busca títulos por substring, tope 20; query vacía lista los
// primeros 50.
func (s *BookService) Search(query string) []string {
	return s.engine.Search(query)
}

func (s *BookService) AllTitles() []string {
	return s.engine.AllTitles()
}
