package handler

import (
	"encoding/json"
	"net/http"

	"librosml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminMaintenanceHandler expone el mantenimiento del motor (solo ADMIN).
type AdminMaintenanceHandler struct {
	svc *service.AdminMaintenanceService
}

func NewAdminMaintenanceHandler(s *service.AdminMaintenanceService) *AdminMaintenanceHandler {
	return &AdminMaintenanceHandler{svc: s}
}

// MountAdminMaintenanceRoutes monta las rutas de mantenimiento bajo /admin/engine.
func MountAdminMaintenanceRoutes(r chi.Router, h *AdminMaintenanceHandler) {
	r.Route("/admin/engine", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Post("/reload", h.Reload)
	})
}

// @Summary Resumen del motor (ADMIN)
// @Description Títulos y usuarios de la matriz, fuente de datos y hora de carga.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.EngineSummary
// @Router /admin/engine/summary [get]
func (h *AdminMaintenanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.GetEngineSummary())
}

// @Summary Recargar el motor (ADMIN)
// @Description Reconstruye matriz + índice desde los CSV (o el dataset sintético si fallan).
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.ReloadResult
// @Router /admin/engine/reload [post]
func (h *AdminMaintenanceHandler) Reload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.ReloadEngine())
}
