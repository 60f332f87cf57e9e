package service

import (
	"context"
	"fmt"

	"librosml-pc5/internal/models"
	"librosml-pc5/internal/recommender"
	"librosml-pc5/internal/repository"
)

type FavoriteService struct {
	favs   *repository.FavoriteRepository
	engine *recommender.Engine
}

func NewFavoriteService(favs *repository.FavoriteRepository, engine *recommender.Engine) *FavoriteService {
	return &FavoriteService{favs: favs, engine: engine}
}

// Add guarda un favorito. El título se resuelve contra el motor para guardar
// siempre el título canónico, no lo que tipeó el usuario.
func (s *FavoriteService) Add(ctx context.Context, userID int, bookTitle string) (string, error) {
	if bookTitle == "" {
		return "", fmt.Errorf("book title is required")
	}

	canonical, ok := s.engine.ResolveTitle(bookTitle)
	if !ok {
		return "", fmt.Errorf("book %q not found", bookTitle)
	}

	if err := s.favs.UpsertFavorite(ctx, userID, canonical); err != nil {
		return "", err
	}
	return canonical, nil
}

func (s *FavoriteService) GetByUser(ctx context.Context, userID int) ([]models.FavoriteDoc, error) {
	return s.favs.GetByUser(ctx, userID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID int, bookTitle string) error {
	if bookTitle == "" {
		return fmt.Errorf("book title is required")
	}
	deleted, err := s.favs.Delete(ctx, userID, bookTitle)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("favorite not found")
	}
	return nil
}
