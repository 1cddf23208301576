package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatboard/internal/chat"
	"chatboard/internal/config"
	"chatboard/internal/httpapi"
)

func main() {
	cfg := config.Load()

	store := chat.NewStore()
	seeds := chat.NewSeedLoader(cfg.SeedPath)
	if err := seeds.Load(store); err != nil {
		// start with the empty store rather than failing
		slog.Warn("seed load failed, starting empty", "path", cfg.SeedPath, "err", err)
	}

	r := httpapi.NewRouter(store, seeds, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	slog.Info("chatboard listening", "url", "http://localhost"+cfg.Addr)

	<-ctx.Done()
	slog.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		slog.Error("shutdown", "err", err)
	}
}
