package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"

	httpadp "agent-api/internal/adapter/http"
	"agent-api/internal/config"
	"agent-api/internal/infrastructure/logging"
	"agent-api/internal/infrastructure/server"
	"agent-api/internal/usecase/info"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", "err", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("logger", "err", err)
	}
	log.SetDefault(logger)

	h := httpadp.NewHandler(info.NewUsecase())
	e := httpadp.NewRouter(h, logger, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(e, logger, cfg.ShutdownTimeout)
	ln, err := srv.Listen(cfg.Addr())
	if err != nil {
		logger.Fatal("listen", "err", err)
	}
	if err := srv.Run(ctx, ln); err != nil {
		logger.Fatal("serve", "err", err)
	}
	logger.Info("server stopped")
}
