package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/campusmind/campusmind-api/internal/config"
	"github.com/campusmind/campusmind-api/internal/domain/admin"
	"github.com/campusmind/campusmind-api/internal/domain/auth"
	"github.com/campusmind/campusmind-api/internal/domain/moderation"
	"github.com/campusmind/campusmind-api/internal/domain/post"
	"github.com/campusmind/campusmind-api/internal/domain/user"
	"github.com/campusmind/campusmind-api/internal/domain/wellness"
	"github.com/campusmind/campusmind-api/internal/middleware"
	"github.com/campusmind/campusmind-api/internal/pkg/database"
	"github.com/campusmind/campusmind-api/internal/pkg/jwt"
	"github.com/campusmind/campusmind-api/internal/pkg/logger"
	pkgresponse "github.com/campusmind/campusmind-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting CampusMind API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	adminJWTService := admin.NewJWTService(cfg.JWTSecret, cfg.AdminJWTTTL)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	postRepo := post.NewRepository(db)
	wellnessRepo := wellness.NewRepository(db)
	moderationRepo := moderation.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis, cfg.JWTAccessTTL)
	postService := post.NewService(postRepo)
	wellnessService := wellness.NewService(wellnessRepo)
	moderationService := moderation.NewService(moderationRepo, postRepo, userRepo)
	adminService := admin.NewService(adminRepo, userRepo, cfg.AdminMaxLoginAttempts, cfg.AdminLockoutDuration)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	postHandler := post.NewHandler(postService)
	wellnessHandler := wellness.NewHandler(wellnessService)
	moderationHandler := moderation.NewHandler(moderationService)
	adminHandler := admin.NewHandler(adminService, adminJWTService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/posts", postHandler.Routes(authMiddleware))
		r.Mount("/wellness", wellnessHandler.Routes(authMiddleware))
		r.Mount("/", moderationHandler.Routes(authMiddleware))
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Mount("/", adminHandler.Routes())

		adminAuthMiddleware := admin.AuthMiddleware(adminJWTService, adminService)
		moderatePermission := admin.RequirePermission(admin.PermModerateReports)
		r.Mount("/reports", moderationHandler.AdminRoutes(adminAuthMiddleware, moderatePermission))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
