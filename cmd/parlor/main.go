package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/arcadelab/parlor/internal/api"
	"github.com/arcadelab/parlor/internal/config"
	"github.com/arcadelab/parlor/internal/logger"
	"github.com/arcadelab/parlor/internal/questions"
	"github.com/arcadelab/parlor/internal/store"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db, err := store.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		zl.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		zl.Fatal("migrate database", zap.Error(err))
	}

	// Seed the question catalog so the quiz is playable before the first
	// game-start reseed.
	if _, err := db.ReplaceQuestions(questions.DefaultCatalog()); err != nil {
		zl.Fatal("seed question catalog", zap.Error(err))
	}

	server := api.NewServer(db, zl)
	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
