package handler

import (
	"github.com/gin-gonic/gin"

	"copytool-ai-api/internal/application/serp"
	"copytool-ai-api/internal/infrastructure/search"
	"copytool-ai-api/internal/interfaces/http/dto"
	pkgerrors "copytool-ai-api/pkg/errors"
	"copytool-ai-api/pkg/logger"
)

// SerpHandler 搜索结果分析处理器
type SerpHandler struct {
	search   *search.Client
	analyzer *serp.Analyzer
}

// NewSerpHandler 创建搜索结果分析处理器
func NewSerpHandler(searchClient *search.Client, analyzer *serp.Analyzer) *SerpHandler {
	return &SerpHandler{
		search:   searchClient,
		analyzer: analyzer,
	}
}

// Search 关键词搜索
func (h *SerpHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SerpSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.BadRequest(c, "query parameter q is required")
		return
	}

	results, err := h.search.Search(ctx, req.Query)
	if err != nil {
		if upErr, ok := pkgerrors.AsUpstreamError(err); ok {
			dto.BadGateway(c, "search provider error", &dto.ErrorDetail{
				ErrorCode: string(pkgerrors.CodeSearchProviderError),
				Details:   upErr.Body,
			})
			return
		}
		if _, ok := pkgerrors.AsTransportError(err); ok {
			dto.ServiceUnavailable(c, "search service unreachable")
			return
		}
		logger.Error(ctx, "search failed", err)
		dto.InternalError(c, "search failed")
		return
	}

	dto.Success(c, dto.ToSerpSearchResponse(results))
}

// Analyze 分析一条搜索结果并提取小节提案
func (h *SerpHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SerpAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	analysis, err := h.analyzer.Analyze(ctx, req.ToSearchResult(), req.FocusKeyword)
	if err != nil {
		if upErr, ok := pkgerrors.AsUpstreamError(err); ok {
			dto.BadGateway(c, "serp analysis failed", &dto.ErrorDetail{
				ErrorCode: string(pkgerrors.CodeLLMProviderError),
				Details:   upErr.Body,
			})
			return
		}
		if _, ok := pkgerrors.AsTransportError(err); ok {
			dto.ServiceUnavailable(c, "generation service unreachable")
			return
		}
		logger.Error(ctx, "serp analysis failed", err)
		dto.InternalError(c, "serp analysis failed")
		return
	}

	proposal := serp.ProposeSection(analysis)

	dto.Success(c, dto.ToSerpAnalyzeResponse(analysis, proposal))
}
