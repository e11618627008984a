// Package app 负责应用的依赖装配与生命周期管理
package app

import (
	"context"

	"copytool-ai-api/internal/application/content"
	"copytool-ai-api/internal/application/serp"
	"copytool-ai-api/internal/config"
	"copytool-ai-api/internal/infrastructure/llm"
	"copytool-ai-api/internal/infrastructure/persistence/postgres"
	"copytool-ai-api/internal/infrastructure/persistence/redis"
	"copytool-ai-api/internal/infrastructure/search"
	"copytool-ai-api/internal/interfaces/http/handler"
	"copytool-ai-api/internal/interfaces/http/router"
	"copytool-ai-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// App 应用实例，持有全部基础设施依赖
type App struct {
	cfg    *config.Config
	pg     *postgres.Client
	redis  *redis.Client
	router *router.Router
}

// New 按依赖顺序装配应用：基础设施 -> 应用服务 -> HTTP 层
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// 基础设施层
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, err
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		_ = pgClient.Close()
		return nil, err
	}

	cache := redis.NewCache(redisClient)
	rateLimiter := redis.NewRateLimiter(redisClient)

	brandRepo := postgres.NewBrandRepository(pgClient)
	contentRepo := postgres.NewContentRepository(pgClient)
	logRepo := postgres.NewGenerationLogRepository(pgClient)
	txManager := postgres.NewTxManager(pgClient)

	llmClient := llm.NewClient(&cfg.LLM)
	searchClient := search.NewClient(&cfg.Search.Google)

	// 应用服务层
	generator := content.NewGenerator(llmClient, &cfg.Generation)
	analyzer := serp.NewAnalyzer(llmClient, &cfg.Generation)

	// HTTP 层
	brandHandler := handler.NewBrandHandler(brandRepo, cache, cfg.Cache.BrandTTL)
	handlers := router.Handlers{
		Health:  handler.NewHealthHandler(pgClient, redisClient),
		Brand:   brandHandler,
		Content: handler.NewContentHandler(generator, brandHandler, contentRepo, logRepo, txManager),
		Serp:    handler.NewSerpHandler(searchClient, analyzer),
	}

	r := router.New(cfg, handlers, rateLimiter)

	logger.Info(ctx, "application initialized",
		"llm_provider", cfg.LLM.DefaultProvider,
		"model", llmClient.DefaultModel(),
	)

	return &App{
		cfg:    cfg,
		pg:     pgClient,
		redis:  redisClient,
		router: r,
	}, nil
}

// Engine 返回 HTTP 引擎
func (a *App) Engine() *gin.Engine {
	return a.router.Engine()
}

// Close 释放基础设施连接
func (a *App) Close(ctx context.Context) {
	if err := a.redis.Close(); err != nil {
		logger.Warn(ctx, "failed to close redis client", "error", err)
	}
	if err := a.pg.Close(); err != nil {
		logger.Warn(ctx, "failed to close postgres client", "error", err)
	}
}
