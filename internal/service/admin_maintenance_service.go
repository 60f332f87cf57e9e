package service

import (
	"log"
	"time"

	"librosml-pc5/internal/models"
	"librosml-pc5/internal/recommender"
)

// AdminMaintenanceService orquesta el mantenimiento del motor (estado y
// recarga del dataset).
type AdminMaintenanceService struct {
	engine *recommender.Engine
}

func NewAdminMaintenanceService(engine *recommender.Engine) *AdminMaintenanceService {
	return &AdminMaintenanceService{engine: engine}
}

// GetEngineSummary devuelve el resumen del estado cargado.
func (s *AdminMaintenanceService) GetEngineSummary() models.EngineSummary {
	return s.engine.Summary()
}

// ReloadResult es la respuesta de /admin/engine/reload.
type ReloadResult struct {
	Summary models.EngineSummary `json:"summary"`
	TookMs  int64                `json:"tookMs"`
}

// ReloadEngine reconstruye matriz + índice desde cero y swapea el estado.
// Las consultas en vuelo no se ven afectadas: siguen leyendo el estado viejo
// hasta que el nuevo queda publicado.
func (s *AdminMaintenanceService) ReloadEngine() ReloadResult {
	start := time.Now()
	s.engine.Load()
	elapsed := time.Since(start)

	log.Printf("[admin] engine recargado en %s", elapsed)

	return ReloadResult{
		Summary: s.engine.Summary(),
		TookMs:  elapsed.Milliseconds(),
	}
}
