package trends

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vegas-mcp/backend/internal/dates"
	"github.com/vegas-mcp/backend/pkg/response"
)

// dimension describes one categorical breakdown: the tag column it
// groups by, the JSON key for the category value, the key wrapping the
// row list, and the label used when the tag is absent.
type dimension struct {
	column     string
	rowKey     string
	wrapperKey string
	fallback   string
}

var (
	dimLanguages      = dimension{column: "language", rowKey: "language", wrapperKey: "languages", fallback: "unknown"}
	dimTopicLanguages = dimension{column: "topic_language", rowKey: "language", wrapperKey: "topicLanguages", fallback: "general"}
	dimFrameworks     = dimension{column: "framework", rowKey: "framework", wrapperKey: "frameworks", fallback: "none"}
	dimRuntimes       = dimension{column: "runtime", rowKey: "runtime", wrapperKey: "runtimes", fallback: "none"}
	dimIdes           = dimension{column: "source_ide", rowKey: "ide", wrapperKey: "ides", fallback: "unknown"}
	dimRepositories   = dimension{column: "github_repo", rowKey: "repository", wrapperKey: "repositories", fallback: "none"}
)

// Handler handles the trend aggregation HTTP requests.
type Handler struct {
	repo                *Repository
	keywords            *KeywordExtractor
	defaultKeywordLimit int
	logger              *zap.Logger
}

// NewHandler creates a trends handler.
func NewHandler(repo *Repository, keywords *KeywordExtractor, defaultKeywordLimit int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultKeywordLimit <= 0 {
		defaultKeywordLimit = 20
	}
	return &Handler{repo: repo, keywords: keywords, defaultKeywordLimit: defaultKeywordLimit, logger: logger}
}

// Overview handles GET /api/trends/overview.
func (h *Handler) Overview(c *gin.Context) {
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}
	o, err := h.repo.Overview(c.Request.Context(), rng)
	if err != nil {
		h.logger.Error("trends overview failed", zap.Error(err))
		response.Internal(c, "failed to compute overview")
		return
	}
	avgAnswers := 0.0
	if o.TotalQuestions > 0 {
		avgAnswers = roundTo(float64(o.TotalAnswers)/float64(o.TotalQuestions), 2)
	}
	correctRate := 0.0
	if o.TotalAnswers > 0 {
		correctRate = roundTo(float64(o.CorrectAnswers)/float64(o.TotalAnswers), 3)
	}
	response.OK(c, gin.H{"overview": gin.H{
		"totalInteractions":     o.TotalQuestions,
		"totalQuestions":        o.TotalQuestions,
		"totalAnswers":          o.TotalAnswers,
		"avgAnswersPerQuestion": avgAnswers,
		"correctAnswerRate":     correctRate,
		"dateRange": gin.H{
			"start": o.EarliestAsked,
			"end":   o.LatestAsked,
		},
	}})
}

// Languages handles GET /api/trends/languages.
func (h *Handler) Languages(c *gin.Context) { h.distribution(c, dimLanguages) }

// TopicLanguages handles GET /api/trends/topic-languages.
func (h *Handler) TopicLanguages(c *gin.Context) { h.distribution(c, dimTopicLanguages) }

// Frameworks handles GET /api/trends/frameworks.
func (h *Handler) Frameworks(c *gin.Context) { h.distribution(c, dimFrameworks) }

// Runtimes handles GET /api/trends/runtimes.
func (h *Handler) Runtimes(c *gin.Context) { h.distribution(c, dimRuntimes) }

// Ides handles GET /api/trends/ides.
func (h *Handler) Ides(c *gin.Context) { h.distribution(c, dimIdes) }

// Repositories handles GET /api/trends/repositories.
func (h *Handler) Repositories(c *gin.Context) { h.distribution(c, dimRepositories) }

// Temporal handles GET /api/trends/temporal?interval=daily|weekly|monthly.
// Invalid or missing intervals default to daily.
func (h *Handler) Temporal(c *gin.Context) {
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}
	interval := c.Query("interval")
	var unit string
	switch interval {
	case "weekly":
		unit = "week"
	case "monthly":
		unit = "month"
	default:
		interval = "daily"
		unit = "day"
	}
	buckets, err := h.repo.Temporal(c.Request.Context(), unit, rng)
	if err != nil {
		h.logger.Error("trends temporal failed", zap.Error(err))
		response.Internal(c, "failed to compute temporal trends")
		return
	}
	response.OK(c, gin.H{"interval": interval, "trends": buckets})
}

// Keywords handles GET /api/trends/keywords?limit=N.
func (h *Handler) Keywords(c *gin.Context) {
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}
	limit := h.defaultKeywordLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}
	prompts, err := h.repo.Prompts(c.Request.Context(), rng)
	if err != nil {
		h.logger.Error("trends keywords failed", zap.Error(err))
		response.Internal(c, "failed to load questions")
		return
	}
	response.OK(c, gin.H{
		"keywords":       h.keywords.Extract(prompts, limit),
		"totalQuestions": len(prompts),
	})
}

// AnswerQuality handles GET /api/trends/answer-quality.
func (h *Handler) AnswerQuality(c *gin.Context) {
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}
	rows, err := h.repo.QualityRows(c.Request.Context(), rng)
	if err != nil {
		h.logger.Error("trends answer quality failed", zap.Error(err))
		response.Internal(c, "failed to compute answer quality")
		return
	}
	response.OK(c, gin.H{"quality": ComputeQuality(rows)})
}

func (h *Handler) distribution(c *gin.Context, dim dimension) {
	rng, ok := h.dateRange(c)
	if !ok {
		return
	}
	counts, err := h.repo.Distribution(c.Request.Context(), dim.column, rng)
	if err != nil {
		h.logger.Error("trends distribution failed", zap.Error(err), zap.String("dimension", dim.wrapperKey))
		response.Internal(c, "failed to compute distribution")
		return
	}
	ranked := Distribution(counts, dim.fallback)
	rows := make([]gin.H, 0, len(ranked))
	for _, row := range ranked {
		rows = append(rows, gin.H{
			dim.rowKey:   row.Category,
			"count":      row.Count,
			"percentage": row.Percentage,
		})
	}
	response.OK(c, gin.H{dim.wrapperKey: rows})
}

// dateRange parses the optional start/end pair shared by every trends
// endpoint, writing a 400 on validation failure.
func (h *Handler) dateRange(c *gin.Context) (*dates.Range, bool) {
	rng, err := dates.OptionalSpan(c.Query("start"), c.Query("end"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}
	return rng, true
}
