package handler

import (
	"encoding/json"
	"net/http"

	"librosml-pc5/internal/service"
)

type BookHandler struct {
	svc *service.BookService
}

func NewBookHandler(s *service.BookService) *BookHandler {
	return &BookHandler{svc: s}
}

// @Summary Buscar títulos por substring
// @Description Sin query devuelve los primeros 50 títulos; con query, hasta 20 matches.
// @Tags books
// @Produce json
// @Param q query string false "texto a buscar"
// @Success 200 {object} map[string][]string
// @Router /books/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	books := h.svc.Search(q)

	_ = json.NewEncoder(w).Encode(map[string]any{"books": books})
}

// @Summary Listar todos los títulos
// @Tags books
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /books [get]
func (h *BookHandler) All(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"books": h.svc.AllTitles()})
}
