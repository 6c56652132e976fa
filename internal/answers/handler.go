package answers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vegas-mcp/backend/pkg/response"
)

// Handler handles answer HTTP requests.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates an answers handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /api/answers.
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list answers failed", zap.Error(err))
		response.Internal(c, "failed to list answers")
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /api/answers/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid answer id")
		return
	}
	a, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "answer not found")
			return
		}
		h.logger.Error("get answer failed", zap.Error(err), zap.String("answer_id", id.String()))
		response.Internal(c, "failed to load answer")
		return
	}
	response.OK(c, a)
}
