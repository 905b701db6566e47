package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipe-book/backend/internal/config"
	"github.com/recipe-book/backend/internal/db"
	"github.com/recipe-book/backend/internal/handler"
	"github.com/recipe-book/backend/internal/logger"
	"github.com/recipe-book/backend/internal/migrate"
	"github.com/recipe-book/backend/internal/service"
)

// @title Recipe API
// @version 1.0
// @description Recipe sharing backend: recipe CRUD and user authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// 로거 설정 전이라 표준 에러로 남긴다
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		dsn, err := db.BuildPostgresURL(cfg.Postgres)
		if err != nil {
			log.Fatal("invalid postgres config", zap.Error(err))
		}
		if err := migrate.Up(ctx, dsn); err != nil {
			log.Fatal("migrate up", zap.Error(err))
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := db.New(pool)

	// 로그아웃 토큰 블록리스트: 프로세스 수명 동안만 유지
	blocklist := service.NewTokenBlocklist()
	authSvc, err := service.NewAuthService(repo, blocklist, cfg.Auth, log)
	if err != nil {
		log.Fatal("auth service", zap.Error(err))
	}
	recipeSvc := service.NewRecipeService(repo, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler.NewRouter(authSvc, recipeSvc, cfg.CORS, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("shutdown complete")
}
