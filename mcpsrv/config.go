package mcpsrv

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/pokedextui/config"
	"github.com/qyinm/pokedextui/logger"
)

// Config is the mcp section of the pokedex config
type Config = config.MCP

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

// StartCacheClearer empties the source caches every interval until ctx is
// done. It does nothing for a non-positive interval or a source without a
// cache.
func StartCacheClearer(ctx context.Context, source any, interval time.Duration) {
	clearable, ok := source.(cacheClearSource)
	if interval <= 0 || !ok {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				clearable.ClearCache()
				logger.Debug("mcp: cleared gateway cache")
			case <-ctx.Done():
				return
			}
		}
	}()
}
