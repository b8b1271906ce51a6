// Package mcpserver exposes the analysis pipeline over MCP, so an agent
// can query a project's dead-code issues as a tool call instead of
// shelling out to the CLI. Composes a *server.MCPServer
// (WithToolHandlerMiddleware for optional call logging, AddTools,
// ServeStdio, Close) around two tools: analyze_project and
// list_issue_kinds. Uses github.com/mark3labs/mcp-go.
package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/atani/php-knip/pkg/mcplog"
	"github.com/atani/php-knip/pkg/plugin"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server, exposing dead-code analysis tools.
type Server struct {
	mcpServer *server.MCPServer
	plugins   *plugin.Manager
	logger    *slog.Logger
	toolLog   *mcplog.Logger // may be nil if tool-call logging is disabled
}

// NewServer creates an MCP server. plugins, if nil, defaults to an empty
// Manager (no framework plugin contributes ignore rules or entry
// points). toolLog, if nil, disables tool-call JSONL logging.
func NewServer(plugins *plugin.Manager, logger *slog.Logger, toolLog *mcplog.Logger) *Server {
	if plugins == nil {
		plugins = plugin.NewManager()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{plugins: plugins, logger: logger, toolLog: toolLog}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if toolLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("php-knip", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: analyzeProjectTool(), Handler: s.handleAnalyzeProject},
		server.ServerTool{Tool: listIssueKindsTool(), Handler: s.handleListIssueKinds},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close shuts down the tool-call logger if one is active. Should be
// deferred after NewServer.
func (s *Server) Close() error {
	if s.toolLog != nil {
		return s.toolLog.Close()
	}
	return nil
}
</content>
