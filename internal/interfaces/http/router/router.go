// Package router 提供 HTTP 路由配置
package router

import (
	"copytool-ai-api/internal/config"
	"copytool-ai-api/internal/interfaces/http/handler"
	"copytool-ai-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Health  *handler.HealthHandler
	Brand   *handler.BrandHandler
	Content *handler.ContentHandler
	Serp    *handler.SerpHandler
}

// Router HTTP 路由器
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	handlers    Handlers
	rateLimiter middleware.RateLimiter
}

// New 创建新的路由器
func New(cfg *config.Config, handlers Handlers, rateLimiter middleware.RateLimiter) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:      engine,
		cfg:         cfg,
		handlers:    handlers,
		rateLimiter: rateLimiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	// 限流中间件
	r.engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:           r.cfg.Security.RateLimit.Enabled,
		RequestsPerSecond: r.cfg.Security.RateLimit.RequestsPerSecond,
		Burst:             r.cfg.Security.RateLimit.Burst,
	}, r.rateLimiter))
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 系统端点
	r.engine.GET("/health", r.handlers.Health.Health)
	r.engine.GET("/ready", r.handlers.Health.Ready)
	r.engine.GET("/live", r.handlers.Health.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// API v1 路由组
	v1 := r.engine.Group("/v1")
	{
		// 品牌管理
		brands := v1.Group("/brands")
		{
			brands.GET("", r.handlers.Brand.ListBrands)
			brands.POST("", r.handlers.Brand.CreateBrand)
			brands.GET("/:bid", r.handlers.Brand.GetBrand)
			brands.PUT("/:bid", r.handlers.Brand.UpdateBrand)
			brands.DELETE("/:bid", r.handlers.Brand.DeleteBrand)

			// 品牌下的文案生成与历史
			brands.POST("/:bid/content/generate", r.handlers.Content.Generate)
			brands.GET("/:bid/content", r.handlers.Content.ListByBrand)
			brands.GET("/:bid/logs", r.handlers.Content.ListLogs)
		}

		// 生成内容管理
		contents := v1.Group("/content")
		{
			contents.GET("/:cid", r.handlers.Content.Get)
			contents.PUT("/:cid", r.handlers.Content.Update)
			contents.DELETE("/:cid", r.handlers.Content.Delete)
		}

		// 搜索结果分析
		serp := v1.Group("/serp")
		{
			serp.GET("/search", r.handlers.Serp.Search)
			serp.POST("/analyze", r.handlers.Serp.Analyze)
		}
	}
}
