package main

import (
	"log"
	"net/http"

	_ "librosml-pc5/docs" // swagger docs

	"librosml-pc5/internal/cache"
	"librosml-pc5/internal/config"
	"librosml-pc5/internal/db"
	"librosml-pc5/internal/handler"
	"librosml-pc5/internal/recommender"
	"librosml-pc5/internal/repository"
	"librosml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title LibrosML Book Recommender API
// @version 1.0
// @description API para PC5 (item-based KNN en memoria, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// =======================================
	// Motor de recomendaciones (carga única)
	// =======================================
	engine := recommender.NewEngine(cfg.BooksCSV, cfg.RatingsCSV)
	log.Println("[engine] cargando dataset…")
	engine.Load()

	// repos
	userRepo := repository.NewUserRepository()
	favRepo := repository.NewFavoriteRepository()
	recRepo := repository.NewRecHistoryRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	bookSvc := service.NewBookService(engine)
	favSvc := service.NewFavoriteService(favRepo, engine)
	recSvc := service.NewRecommendService(engine, recRepo)
	// servicio de mantenimiento admin
	adminMaintSvc := service.NewAdminMaintenanceService(engine)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	bookH := handler.NewBookHandler(bookSvc)
	favH := handler.NewFavoriteHandler(favSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminMaintH := handler.NewAdminMaintenanceHandler(adminMaintSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Libros (públicas)
	r.Get("/books", bookH.All)
	r.Get("/books/search", bookH.Search)
	r.Post("/books/recommend", recH.Recommend)

	// WebSocket
	r.Get("/books/ws/recommend", recH.RecommendWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/favorites", favH.List)
			r.Post("/favorites", favH.Add)
			r.Delete("/favorites", favH.Remove)
			r.Get("/recommendations", recH.GetMyHistory)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/users", authH.ListUsers)
			r.Get("/users/{id}", authH.GetUserByID)

			// --- mantenimiento del motor ---
			handler.MountAdminMaintenanceRoutes(r, adminMaintH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
