package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qyinm/pokedextui/config"
	"github.com/qyinm/pokedextui/logger"
	"github.com/qyinm/pokedextui/mcpsrv"
	"github.com/qyinm/pokedextui/pokeapi"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config: %v", err)
	}
	if err := logger.SetupStderr(cfg.LogLevel, cfg.LogFile); err != nil {
		logger.Fatal("setup logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	source := pokeapi.New(
		pokeapi.WithBaseURL(cfg.APIBaseURL),
		pokeapi.WithTimeout(cfg.HTTPTimeout),
		pokeapi.WithUserAgent(cfg.UserAgent),
	)
	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{
		EnableAdmin: cfg.MCP.EnableAdmin && cfg.MCP.APIKey != "",
		APIKey:      cfg.MCP.APIKey,
	})

	mcpsrv.StartCacheClearer(ctx, source, cfg.MCP.CacheClearInterval)

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.MCP.Port),
		Handler:           mcpsrv.NewMux(server, cfg.MCP),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error: %v", err)
		}
	}()

	logger.Info("pokedex-mcp listening on %s", httpServer.Addr)
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed: %v", err)
	}
}
