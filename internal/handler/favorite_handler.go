package handler

import (
	"encoding/json"
	"net/http"

	"librosml-pc5/internal/service"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: s}
}

type favoriteRequest struct {
	BookTitle string `json:"bookTitle"`
}

// @Summary Agregar favorito
// @Description Resuelve el título contra el motor y lo guarda canónico.
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body favoriteRequest true "título"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /me/favorites [post]
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	canonical, err := h.svc.Add(r.Context(), userID, req.BookTitle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"added":     true,
		"bookTitle": canonical,
	})
}

// @Summary Listar favoritos del usuario
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.FavoriteDoc
// @Router /me/favorites [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	favs, err := h.svc.GetByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(favs)
}

// @Summary Quitar favorito
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Success 204
// @Router /me/favorites [delete]
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Remove(r.Context(), userID, req.BookTitle); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
