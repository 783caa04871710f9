package main

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/notegate/backend/internal/config"
	"github.com/notegate/backend/internal/db"
	"github.com/notegate/backend/internal/handler"
	"github.com/notegate/backend/internal/logutil"
	"github.com/notegate/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logutil.Setup(cfg.IsProduction(), cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authSvc, err := service.NewAuthService(cfg.Auth, cfg.IsProduction(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("auth configuration invalid")
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureNotesSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure notes schema")
	}

	noteSvc := service.NewNoteService(repo)
	router := handler.NewRouter(cfg, log, authSvc, noteSvc)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("notegate api listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
