package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dbadapter "github.com/Mikielai/crudblog/internal/adapters/database"
	"github.com/Mikielai/crudblog/internal/adapters/httpapi"
	redisadapter "github.com/Mikielai/crudblog/internal/adapters/redis"
	"github.com/Mikielai/crudblog/internal/adapters/storage"
	"github.com/Mikielai/crudblog/internal/config"
	"github.com/Mikielai/crudblog/internal/core/comment"
	commentapp "github.com/Mikielai/crudblog/internal/core/comment/service"
	"github.com/Mikielai/crudblog/internal/core/post"
	postapp "github.com/Mikielai/crudblog/internal/core/post/service"
	"github.com/Mikielai/crudblog/internal/core/user"
	userapp "github.com/Mikielai/crudblog/internal/core/user/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	events := redisadapter.NewEventRepositoryRedis(config.RedisClient)

	images, err := storage.NewLocalImageStore(config.UploadDir())
	if err != nil {
		config.Logger.Fatal("Failed to initialize image store:", zap.Error(err))
	}

	userSvc := userapp.NewUserService(userRepo, config.Logger)
	postSvc := postapp.NewPostService(postRepo, commentRepo, userSvc, config.Logger)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, userSvc, config.Logger)

	r, err := httpapi.SetupRoutes(
		postSvc,
		commentSvc,
		userSvc,
		events,
		images,
		config.SessionSecret(),
		config.WebhookSecret(),
		config.UploadDir(),
		config.Logger,
	)
	if err != nil {
		config.Logger.Fatal("Failed to set up routes:", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		config.Logger.Info("App is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger.Fatal("Server failed to start:", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Shutdown error:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
