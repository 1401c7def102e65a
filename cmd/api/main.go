package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"githubsearch/internal/config"
	"githubsearch/internal/database"
	"githubsearch/internal/middleware"
	"githubsearch/internal/modules/auth"
	"githubsearch/internal/modules/github"
	"githubsearch/internal/modules/users"
	"githubsearch/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	userService := users.NewService(userRepo)
	issuer := auth.NewIssuer(userService, tokenRepo, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authService := auth.NewService(userService, tokenRepo, issuer)
	authHandler := auth.NewHandler(authService)

	githubService := github.NewService(cfg.GithubAPIURL)
	githubHandler := github.NewHandler(githubService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(),
	)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(cfg.JWTSecret))
		{
			githubHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
