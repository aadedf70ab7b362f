package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kyriakid1s/portfolio"
	"github.com/kyriakid1s/portfolio/pkg/domain"
	"github.com/kyriakid1s/portfolio/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// CommandsURI lists the terminal commands as a resource.
const CommandsURI = "portfolio://commands"

// ClearedNotice is returned by run_command when the command cleared the terminal.
const ClearedNotice = "(terminal cleared)"

// CommandInfo describes one registry entry in the commands resource.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type runCommandArgs struct {
	Command string `mapstructure:"command"`
}

type readPostArgs struct {
	ID string `mapstructure:"id"`
}

// Server exposes the portfolio terminal and blog as an MCP Server.
type Server struct {
	site      *portfolio.Site
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(site *portfolio.Site) *Server {
	s := &Server{
		site:      site,
		logger:    site.Logger(),
		mcpServer: server.NewMCPServer("portfolio-mcp", strings.TrimSpace(portfolio.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: run_command
	s.mcpServer.AddTool(mcp.NewTool("run_command",
		mcp.WithDescription(`Run one command in a fresh portfolio terminal session and return its output. Try "help" first.`),
		mcp.WithString("command", mcp.Required(), mcp.Description("Command line, e.g. \"about\" or \"read hello-world\"")),
	), s.handleRunCommand)

	// TOOL: list_posts
	s.mcpServer.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List blog posts, newest first."),
	), s.handleListPosts)

	// TOOL: read_post
	s.mcpServer.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read one blog post as markdown."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id as returned by list_posts")),
	), s.handleReadPost)
}

func decodeArgs(request mcp.CallToolRequest, out any) error {
	return mapstructure.Decode(request.GetArguments(), out)
}

func (s *Server) handleRunCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args runCommandArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	clean, err := runner.SanitizeInput(args.Command)
	if err != nil {
		s.logger.Warn("MCP run_command: Input rejected", "error", err, "size", len(args.Command))
		return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
	}

	sess := s.site.NewSession()
	before := len(sess.Transcript())
	sess.SetInput(clean)
	if !sess.Submit() {
		return mcp.NewToolResultError("command is required"), nil
	}

	transcript := sess.Transcript()
	if len(transcript) <= before {
		return mcp.NewToolResultText(ClearedNotice), nil
	}

	var lines []string
	for _, entry := range transcript[before:] {
		lines = append(lines, entry.Lines...)
	}
	text := strings.Join(lines, "\n")
	if transcript[len(transcript)-1].IsError() {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleListPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	posts, err := s.site.Posts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list posts failed: %v", err)), nil
	}
	if posts == nil {
		posts = []domain.PostSummary{}
	}
	jsonBytes, _ := json.Marshal(posts)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleReadPost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args readPostArgs
	if err := decodeArgs(request, &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.ID == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	post, err := s.site.Store().GetPost(ctx, args.ID)
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("Post not found: %s", args.ID)), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("read post failed: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", post.Title)
	if post.Date != "" {
		fmt.Fprintf(&b, "_%s_\n\n", post.Date)
	}
	b.WriteString(post.Content)
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) registerResources() {
	// EXPOSE: portfolio://commands
	s.mcpServer.AddResource(mcp.NewResource(CommandsURI, "Terminal commands",
		mcp.WithMIMEType("application/json"),
	), s.handleCommandsResource)
}

func (s *Server) handleCommandsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.commands())
	if err != nil {
		return nil, fmt.Errorf("failed to encode commands: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CommandsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func (s *Server) commands() []CommandInfo {
	cmds := s.site.Registry().Commands()
	out := make([]CommandInfo, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, CommandInfo{Name: c.Name, Description: c.Description})
	}
	return out
}
