package questions

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vegas-mcp/backend/internal/answers"
	"github.com/vegas-mcp/backend/internal/dates"
	"github.com/vegas-mcp/backend/internal/models"
	"github.com/vegas-mcp/backend/pkg/response"
)

// Handler handles question HTTP requests.
type Handler struct {
	repo       *Repository
	answerRepo *answers.Repository
	logger     *zap.Logger
}

// NewHandler creates a questions handler.
func NewHandler(repo *Repository, answerRepo *answers.Repository, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, answerRepo: answerRepo, logger: logger}
}

// List handles GET /api/questions (all questions, newest first).
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list questions failed", zap.Error(err))
		response.Internal(c, "failed to list questions")
		return
	}
	response.OK(c, list)
}

// GetByID handles GET /api/questions/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}
	q, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "question not found")
			return
		}
		h.logger.Error("get question failed", zap.Error(err), zap.String("question_id", id.String()))
		response.Internal(c, "failed to load question")
		return
	}
	response.OK(c, q)
}

// ListByDate handles GET /api/questions/date?date=YYYY-MM-DD or
// ?start=YYYY-MM-DD&end=YYYY-MM-DD. Exactly one of the two forms must
// be given; each returned question carries its answers.
func (h *Handler) ListByDate(c *gin.Context) {
	rng, err := dates.DayOrSpan(c.Query("date"), c.Query("start"), c.Query("end"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	h.listRangeWithAnswers(c, rng)
}

// ListToday handles GET /api/questions/today (today's questions with
// their answers).
func (h *Handler) ListToday(c *gin.Context) {
	h.listRangeWithAnswers(c, dates.Today(time.Now()))
}

// ListAnswers handles GET /api/questions/:id/answers.
func (h *Handler) ListAnswers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}
	list, err := h.answerRepo.ListByQuestion(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list answers failed", zap.Error(err), zap.String("question_id", id.String()))
		response.Internal(c, "failed to list answers")
		return
	}
	response.OK(c, list)
}

// Delete handles DELETE /api/questions/:id. Answers are removed by the
// cascade.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("delete question failed", zap.Error(err), zap.String("question_id", id.String()))
		response.Internal(c, "failed to delete question")
		return
	}
	if !deleted {
		response.NotFound(c, "question not found")
		return
	}
	response.OK(c, gin.H{"message": "question and answers deleted"})
}

func (h *Handler) listRangeWithAnswers(c *gin.Context, rng dates.Range) {
	ctx := c.Request.Context()
	qs, err := h.repo.ListInRange(ctx, rng)
	if err != nil {
		h.logger.Error("list questions by date failed", zap.Error(err))
		response.Internal(c, "failed to list questions")
		return
	}
	out := make([]models.QuestionWithAnswers, 0, len(qs))
	for _, q := range qs {
		ans, err := h.answerRepo.ListByQuestion(ctx, q.ID)
		if err != nil {
			h.logger.Error("list answers failed", zap.Error(err), zap.String("question_id", q.ID.String()))
			response.Internal(c, "failed to list answers")
			return
		}
		out = append(out, models.QuestionWithAnswers{Question: q, Answers: ans})
	}
	response.OK(c, out)
}
