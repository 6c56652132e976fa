package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/vegas-mcp/backend/internal/answers"
	"github.com/vegas-mcp/backend/internal/models"
	"github.com/vegas-mcp/backend/internal/normalize"
	"github.com/vegas-mcp/backend/internal/questions"
)

// toolHandler holds the dependencies of the MCP tool handlers.
type toolHandler struct {
	questions *questions.Repository
	answers   *answers.Repository
	logger    *zap.Logger
}

func (h *toolHandler) handleCaptureChatTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userMessage := strings.TrimSpace(request.GetString("userMessage", ""))
	if userMessage == "" {
		return mcp.NewToolResultError("userMessage is required and must be non-empty"), nil
	}
	assistantMessage := strings.TrimSpace(request.GetString("assistantMessage", ""))
	if assistantMessage == "" {
		return mcp.NewToolResultError("assistantMessage is required and must be non-empty"), nil
	}

	question := &models.Question{
		Prompt:        userMessage,
		Language:      normalizedLanguage(request.GetString("language", "")),
		TopicLanguage: normalizedLanguage(request.GetString("topicLanguage", "")),
		Framework:     optional(request.GetString("framework", "")),
		Runtime:       optional(request.GetString("runtime", "")),
		SourceIde:     optional(request.GetString("sourceIde", "")),
	}

	if raw := strings.TrimSpace(request.GetString("githubRepo", "")); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Host == "" {
			return mcp.NewToolResultError(fmt.Sprintf("githubRepo must be a well-formed URL, got %q", raw)), nil
		}
		repo, err := normalize.RepoURL(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("githubRepo must be a well-formed URL, got %q", raw)), nil
		}
		question.GithubRepo = &repo
	}

	if err := h.questions.Create(ctx, question); err != nil {
		h.logger.Error("capture question failed", zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to capture chat turn: %v", err)), nil
	}

	// No rollback if this insert fails: the orphaned, unanswered
	// question stays visible.
	answer := &models.Answer{
		QuestionID: question.ID,
		Content:    assistantMessage,
		IsCorrect:  request.GetBool("isCorrect", false),
	}
	if err := h.answers.Create(ctx, answer); err != nil {
		h.logger.Error("capture answer failed", zap.Error(err), zap.String("question_id", question.ID.String()))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to capture chat turn: %v", err)), nil
	}

	payload, err := json.Marshal(map[string]any{"question": question, "answer": answer})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode captured records: %v", err)), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(fmt.Sprintf("Captured chat turn (q:%s, a:%s)", question.ID, answer.ID)),
			mcp.NewTextContent(string(payload)),
		},
	}, nil
}

// optional maps an empty or whitespace-only tag to nil.
func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizedLanguage(s string) *string {
	if v := optional(s); v != nil {
		canonical := normalize.Language(*v)
		return &canonical
	}
	return nil
}
