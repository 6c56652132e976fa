// Package main runs the chat-capture analytics HTTP server with the
// MCP ingestion endpoint and graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vegas-mcp/backend/config"
	"github.com/vegas-mcp/backend/internal/answers"
	"github.com/vegas-mcp/backend/internal/mcp"
	"github.com/vegas-mcp/backend/internal/middleware"
	"github.com/vegas-mcp/backend/internal/questions"
	"github.com/vegas-mcp/backend/internal/trends"
	"github.com/vegas-mcp/backend/pkg/database"
	"github.com/vegas-mcp/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// Questions and answers
	questionRepo := questions.NewRepository(pool)
	answerRepo := answers.NewRepository(pool)
	questionHandler := questions.NewHandler(questionRepo, answerRepo, logger)
	answerHandler := answers.NewHandler(answerRepo, logger)

	// Trends
	trendsRepo := trends.NewRepository(pool)
	keywordExtractor := trends.NewKeywordExtractor(trends.KeywordConfig{})
	trendsHandler := trends.NewHandler(trendsRepo, keywordExtractor, cfg.Trends.KeywordLimit, logger)

	// MCP ingestion (capture_chat_turn tool over streamable HTTP)
	mcpServer := mcp.NewServer(cfg.MCP, questionRepo, answerRepo, logger)
	mcpHTTP := mcp.HTTPHandler(mcpServer)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		// Questions
		api.GET("/questions", questionHandler.List)
		api.GET("/questions/date", questionHandler.ListByDate)
		api.GET("/questions/today", questionHandler.ListToday)
		api.GET("/questions/:id", questionHandler.GetByID)
		api.GET("/questions/:id/answers", questionHandler.ListAnswers)
		api.DELETE("/questions/:id", questionHandler.Delete)

		// Answers
		api.GET("/answers", answerHandler.List)
		api.GET("/answers/:id", answerHandler.GetByID)

		// Trends
		api.GET("/trends/overview", trendsHandler.Overview)
		api.GET("/trends/languages", trendsHandler.Languages)
		api.GET("/trends/topic-languages", trendsHandler.TopicLanguages)
		api.GET("/trends/frameworks", trendsHandler.Frameworks)
		api.GET("/trends/runtimes", trendsHandler.Runtimes)
		api.GET("/trends/ides", trendsHandler.Ides)
		api.GET("/trends/repositories", trendsHandler.Repositories)
		api.GET("/trends/temporal", trendsHandler.Temporal)
		api.GET("/trends/keywords", trendsHandler.Keywords)
		api.GET("/trends/answer-quality", trendsHandler.AnswerQuality)
	}

	// MCP (streamable HTTP transport owns request/response framing)
	router.Any("/mcp", gin.WrapH(mcpHTTP))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
