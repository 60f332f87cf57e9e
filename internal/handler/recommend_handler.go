package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"librosml-pc5/internal/models"
	"librosml-pc5/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

type recommendRequest struct {
	BookName string `json:"bookName"`
	// N es puntero para distinguir "no vino" (default 5) de "vino 0 o negativo" (400).
	N       *int `json:"n"`
	Refresh bool `json:"refresh"`
}

// @Summary Recomendaciones para un libro
// @Description Resuelve el título (exacto → case-insensitive → substring → tokens) y devuelve los n vecinos más similares.
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body recommendRequest true "libro y cantidad"
// @Success 200 {object} service.RecResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]any
// @Router /books/recommend [post]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.BookName == "" {
		http.Error(w, "book name is required", http.StatusBadRequest)
		return
	}
	k := service.DefaultK
	if req.N != nil {
		if *req.N <= 0 {
			http.Error(w, "n must be >= 1", http.StatusBadRequest)
			return
		}
		k = *req.N
	}

	result, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:   UserIDFromContext(r.Context()),
		BookName: req.BookName,
		K:        k,
		Refresh:  req.Refresh,
	})
	if err != nil {
		if nf, ok := service.IsNotFound(err); ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message":     fmt.Sprintf("Book %q not found. Try searching from the list.", nf.Query),
				"suggestions": nf.Suggestions,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(result)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param title query string true "título a consultar"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Router /books/ws/recommend [get]
func (h *RecommendHandler) RecommendWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	title := r.URL.Query().Get("title")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	if k <= 0 {
		k = service.DefaultK
	}

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, resolviendo título…",
	})

	result, err := h.svc.Recommend(r.Context(), service.RecRequest{
		BookName: title,
		K:        k,
	})
	if err != nil {
		if nf, ok := service.IsNotFound(err); ok {
			conn.WriteJSON(map[string]any{
				"type":        "not_found",
				"query":       nf.Query,
				"suggestions": nf.Suggestions,
			})
			return
		}
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type": "resolved",
		"book": result.Book,
	})

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"book":        result.Book,
		"items":       result.Recommendations,
		"generatedAt": time.Now(),
	})
}

// @Summary Historial de recomendaciones del usuario
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.RecHistory
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hist, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if hist == nil {
		hist = []models.RecHistory{}
	}
	_ = json.NewEncoder(w).Encode(hist)
}
