package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"librosml-pc5/internal/cache"
	"librosml-pc5/internal/models"
	"librosml-pc5/internal/recommender"
	"librosml-pc5/internal/repository"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems
)

type RecommendService struct {
	engine  *recommender.Engine
	recRepo *repository.RecHistoryRepository
}

func NewRecommendService(engine *recommender.Engine, recRepo *repository.RecHistoryRepository) *RecommendService {
	return &RecommendService{engine: engine, recRepo: recRepo}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	// UserID opcional: el endpoint es público, pero si viene autenticado
	// lo guardamos en el historial.
	UserID   int
	BookName string
	K        int
	Refresh  bool
}

type RecResult struct {
	Book            string           `json:"book"`
	Recommendations []models.RecBook `json:"recommendations"`
}

func cacheKey(req RecRequest) string {
	// Cachea por título + k (no incluye refresh, refresh solo decide si usar cache)
	return fmt.Sprintf("rec:book:%s:k:%d", strings.ToLower(req.BookName), req.K)
}

// Recommend resuelve el título contra el motor, proyecta los k vecinos y
// guarda la corrida en el historial.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*RecResult, error) {
	if req.BookName == "" {
		return nil, fmt.Errorf("book name is required")
	}
	// defaults y límites para K (el handler ya rechazó n <= 0 explícitos)
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached RecResult
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	// 2) Motor: resolver + vecinos + metadata
	items, err := s.engine.Recommend(req.BookName, req.K)
	if err != nil {
		return nil, err
	}

	resolved, _ := s.engine.ResolveTitle(req.BookName)
	result := &RecResult{Book: resolved, Recommendations: items}

	// 3) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.RecHistory{
			UserID:        req.UserID,
			Query:         req.BookName,
			ResolvedTitle: resolved,
			K:             req.K,
			Items:         items,
			CreatedAt:     time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando historial de recomendación en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), result, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return result, nil
}

// IsNotFound distingue el "título no existe" del resto de errores, para que
// el handler responda 404 con sugerencias en vez de 500.
func IsNotFound(err error) (*recommender.TitleNotFoundError, bool) {
	var nf *recommender.TitleNotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// History devuelve las últimas corridas de un usuario.
func (s *RecommendService) History(ctx context.Context, userID, limit int) ([]models.RecHistory, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.recRepo.GetByUser(ctx, userID, limit)
}
