package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nexusdraft/hots-draft-backend/internal/commentary"
	"github.com/nexusdraft/hots-draft-backend/internal/config"
	"github.com/nexusdraft/hots-draft-backend/internal/httpapi"
	"github.com/nexusdraft/hots-draft-backend/internal/hub"
	"github.com/nexusdraft/hots-draft-backend/internal/session"
	"github.com/nexusdraft/hots-draft-backend/internal/stats"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	var provider session.StatsProvider
	if cfg.DatabaseURL != "" {
		store, err := stats.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("open stats store", zap.Error(err))
		}
		provider = store
	} else {
		log.Info("no DATABASE_URL set, personal win-rate scoring disabled")
	}

	ctx := context.Background()
	h := hub.NewHub(ctx, provider, log)
	gen := commentary.New(cfg.AnthropicAPIKey, cfg.AnthropicModel)

	handler := httpapi.SetupRoutes(h, gen, log)

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	log, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
