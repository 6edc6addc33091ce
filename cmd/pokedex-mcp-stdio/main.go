package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
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
	// stdout carries the protocol
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

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Fatal("stdio mcp server failed: %v", err)
	}
}
