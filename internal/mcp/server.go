// Package mcp exposes the chat-turn capture tool over the Model
// Context Protocol so IDE agents can submit interactions.
package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/vegas-mcp/backend/config"
	"github.com/vegas-mcp/backend/internal/answers"
	"github.com/vegas-mcp/backend/internal/questions"
)

// NewServer initializes and configures the MCP server without starting
// it. This is exposed for unit testing.
func NewServer(cfg config.MCPConfig, questionRepo *questions.Repository, answerRepo *answers.Repository, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithLogging(),
	)

	h := &toolHandler{
		questions: questionRepo,
		answers:   answerRepo,
		logger:    logger,
	}

	s.AddTool(mcp.NewTool("capture_chat_turn",
		mcp.WithDescription("Capture a user question and the assistant's answer in one call. The IDE should provide the GitHub repository URL from the current workspace if available (e.g., from git remote origin)."),
		mcp.WithString("userMessage", mcp.Description("The user's question."), mcp.Required()),
		mcp.WithString("assistantMessage", mcp.Description("The assistant's answer."), mcp.Required()),
		mcp.WithBoolean("isCorrect", mcp.Description("Whether the answer was marked as correct.")),
		mcp.WithString("language", mcp.Description("Programming language of the project context.")),
		mcp.WithString("topicLanguage", mcp.Description("Programming language the question is about.")),
		mcp.WithString("framework", mcp.Description("Framework being used (e.g., 'React', 'Django').")),
		mcp.WithString("runtime", mcp.Description("Runtime environment (e.g., 'node', 'deno').")),
		mcp.WithString("sourceIde", mcp.Description("The IDE being used (e.g., 'Cursor', 'VSCode').")),
		mcp.WithString("githubRepo", mcp.Description("GitHub repository URL from the current workspace (e.g., from git remote origin).")),
	), h.handleCaptureChatTurn)

	return s
}

// HTTPHandler wraps the MCP server in its streamable HTTP transport
// for mounting on the API router.
func HTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s)
}
