package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-blog-backend/config"
	_ "go-blog-backend/docs" // Important for Swagger
	v1 "go-blog-backend/internal/delivery/http/v1"
	"go-blog-backend/internal/repository/postgres"
	"go-blog-backend/internal/usecase"
	"go-blog-backend/pkg/auth"
	"go-blog-backend/pkg/database"
	"go-blog-backend/pkg/email"
	"go-blog-backend/pkg/logger"
	"go-blog-backend/pkg/redis"
)

// @title           BitBlog API
// @version         1.0
// @description     Backend for the BitBlog personal blogging platform using Clean Architecture.
// @host            localhost:3000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting blog backend", "port", cfg.Port, "env", cfg.Env)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	} else {
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	blogRepo := postgres.NewBlogRepository(dbPool)
	commentRepo := postgres.NewCommentRepository(dbPool)
	likeRepo := postgres.NewLikeRepository(dbPool)
	tokenRepo := postgres.NewTokenRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.ContactEmailTo)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 7. Setup Token Manager
	tokens := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret,
		cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry)

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokenRepo, tokens, cfg.WhitelistAdminEmails)
	blogUC := usecase.NewBlogUsecase(blogRepo, cfg.DefaultResLimit)
	commentUC := usecase.NewCommentUsecase(commentRepo, blogRepo)
	likeUC := usecase.NewLikeUsecase(likeRepo, blogRepo)
	userUC := usecase.NewUserUsecase(userRepo, tokenRepo, cfg.DefaultResLimit)
	contactUC := usecase.NewContactUsecase(emailService)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		BlogUC:    blogUC,
		CommentUC: commentUC,
		LikeUC:    likeUC,
		UserUC:    userUC,
		ContactUC: contactUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
