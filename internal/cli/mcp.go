package cli

import (
	"context"
	"fmt"

	mcpAdapter "github.com/kyriakid1s/portfolio/pkg/adapters/mcp"
)

// MCPOptions configures the mcp command.
type MCPOptions struct {
	Options
	Transport string // "stdio" (default) or "sse"
	Port      int
}

// RunMCP exposes the terminal and the blog to MCP clients.
// Logs go to stderr so they never corrupt the stdio transport.
func RunMCP(opts MCPOptions) error {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	logger := createLogger(opts.Debug, false)
	site, err := newSite(cfg, logger, opts.Debug)
	if err != nil {
		return err
	}
	srv := mcpAdapter.NewServer(site)

	switch opts.Transport {
	case "", "stdio":
		return srv.ServeStdio()
	case "sse":
		sigCtx := NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		return srv.ServeSSE(sigCtx, opts.Port)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", opts.Transport)
	}
}
