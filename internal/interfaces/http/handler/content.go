package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"copytool-ai-api/internal/application/content"
	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/domain/repository"
	"copytool-ai-api/internal/interfaces/http/dto"
	pkgerrors "copytool-ai-api/pkg/errors"
	"copytool-ai-api/pkg/logger"
)

// BrandResolver 品牌上下文解析接口
type BrandResolver interface {
	ResolveBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
}

// ContentHandler 文案生成处理器
type ContentHandler struct {
	generator   *content.Generator
	brands      BrandResolver
	contentRepo repository.ContentRepository
	logRepo     repository.GenerationLogRepository
	tx          repository.Transactor
}

// NewContentHandler 创建文案生成处理器
func NewContentHandler(
	generator *content.Generator,
	brands BrandResolver,
	contentRepo repository.ContentRepository,
	logRepo repository.GenerationLogRepository,
	tx repository.Transactor,
) *ContentHandler {
	return &ContentHandler{
		generator:   generator,
		brands:      brands,
		contentRepo: contentRepo,
		logRepo:     logRepo,
		tx:          tx,
	}
}

// Generate 执行一次文案生成
// 无论成败都写入生成日志；上游错误透出状态码与原始错误体
func (h *ContentHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	brandID, err := uuid.Parse(dto.BindBrandID(c))
	if err != nil {
		dto.BadRequest(c, "invalid brand id")
		return
	}

	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	form := req.ToFormInput()

	// 品牌缺失不阻断生成，提示词只是省略品牌块
	brand, err := h.brands.ResolveBrand(ctx, brandID)
	if err != nil {
		logger.Warn(ctx, "failed to resolve brand, generating without brand context", "error", err.Error())
		brand = nil
	}

	start := time.Now()
	output, genErr := h.generator.Generate(ctx, form, brand)
	elapsed := time.Since(start)

	if genErr != nil {
		h.writeLog(ctx, nil, &brandID, content.BuildPrompt(form, brand), "", form.Model, elapsed, genErr)

		if upErr, ok := pkgerrors.AsUpstreamError(genErr); ok {
			dto.BadGateway(c, "content generation failed", &dto.ErrorDetail{
				ErrorCode: string(pkgerrors.CodeLLMProviderError),
				Details:   upErr.Body,
			})
			return
		}
		if _, ok := pkgerrors.AsTransportError(genErr); ok {
			dto.ServiceUnavailable(c, "generation service unreachable")
			return
		}
		logger.Error(ctx, "content generation failed", genErr)
		dto.InternalError(c, "content generation failed")
		return
	}

	record := &entity.GeneratedContent{
		ID:           uuid.New(),
		BrandID:      &brandID,
		ContentType:  form.ContentType,
		Record:       output.Record,
		FormSnapshot: req.FormSnapshot(),
		Status:       entity.GenerationStatusSuccess,
	}

	logEntry := successLog(record, output, elapsed)

	// 内容与审计日志在同一事务内提交，保证两者要么同时落库要么都不落
	txErr := h.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := h.contentRepo.Create(txCtx, record); err != nil {
			return err
		}
		return h.logRepo.Create(txCtx, logEntry)
	})
	if txErr != nil {
		// 持久化失败不吞掉已生成的内容，仍返回给调用方；日志单独补写
		logger.Error(ctx, "failed to persist generated content", txErr)
		record.CreatedAt = time.Now()
		record.UpdatedAt = record.CreatedAt
		if err := h.logRepo.Create(ctx, logEntry); err != nil {
			logger.Warn(ctx, "failed to write generation log", "error", err.Error())
		}
	}

	dto.Created(c, dto.ToGeneratedContentResponse(record, &output.Meta))
}

// ListByBrand 列出品牌下的生成内容
func (h *ContentHandler) ListByBrand(c *gin.Context) {
	ctx := c.Request.Context()

	brandID, err := uuid.Parse(dto.BindBrandID(c))
	if err != nil {
		dto.BadRequest(c, "invalid brand id")
		return
	}

	pageReq := dto.BindPage(c)

	result, err := h.contentRepo.ListByBrand(ctx, brandID, repository.NewPagination(pageReq.Page, pageReq.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list generated contents", err)
		dto.InternalError(c, "failed to list generated contents")
		return
	}

	resp := dto.ToGeneratedContentListResponse(result.Items)
	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, resp, meta)
}

// Get 获取生成内容详情
func (h *ContentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(dto.BindContentID(c))
	if err != nil {
		dto.BadRequest(c, "invalid content id")
		return
	}

	record, err := h.contentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "failed to get generated content", err)
		dto.InternalError(c, "failed to get generated content")
		return
	}
	if record == nil {
		dto.NotFound(c, "generated content not found")
		return
	}

	dto.Success(c, dto.ToGeneratedContentResponse(record, nil))
}

// Update 更新生成内容（用户编辑后的版本）
func (h *ContentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(dto.BindContentID(c))
	if err != nil {
		dto.BadRequest(c, "invalid content id")
		return
	}

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	record, err := h.contentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "failed to load generated content", err)
		dto.InternalError(c, "failed to update generated content")
		return
	}
	if record == nil {
		dto.NotFound(c, "generated content not found")
		return
	}

	record.Record = req.Record

	if err := h.contentRepo.Update(ctx, record); err != nil {
		logger.Error(ctx, "failed to update generated content", err)
		dto.InternalError(c, "failed to update generated content")
		return
	}

	dto.Success(c, dto.ToGeneratedContentResponse(record, nil))
}

// Delete 删除生成内容
func (h *ContentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(dto.BindContentID(c))
	if err != nil {
		dto.BadRequest(c, "invalid content id")
		return
	}

	if err := h.contentRepo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "failed to delete generated content", err)
		dto.InternalError(c, "failed to delete generated content")
		return
	}

	dto.NoContent(c)
}

// ListLogs 列出品牌下的生成日志
func (h *ContentHandler) ListLogs(c *gin.Context) {
	ctx := c.Request.Context()

	brandID, err := uuid.Parse(dto.BindBrandID(c))
	if err != nil {
		dto.BadRequest(c, "invalid brand id")
		return
	}

	pageReq := dto.BindPage(c)

	result, err := h.logRepo.ListByBrand(ctx, brandID, repository.NewPagination(pageReq.Page, pageReq.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list generation logs", err)
		dto.InternalError(c, "failed to list generation logs")
		return
	}

	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, result.Items, meta)
}

// writeLog 记录一次失败调用，日志写入失败不影响响应
func (h *ContentHandler) writeLog(ctx context.Context, contentID *uuid.UUID, brandID *uuid.UUID, prompt, response, model string, elapsed time.Duration, cause error) {
	log := &entity.GenerationLog{
		ID:               uuid.New(),
		ContentID:        contentID,
		BrandID:          brandID,
		PromptText:       prompt,
		ResponseText:     response,
		ModelName:        model,
		ProcessingTimeMs: elapsed.Milliseconds(),
		Status:           entity.GenerationStatusFailed,
	}
	if cause != nil {
		log.ErrorMessage = cause.Error()
	}
	if err := h.logRepo.Create(ctx, log); err != nil {
		logger.Warn(ctx, "failed to write generation log", "error", err.Error())
	}
}

// successLog 构造一次成功调用的日志记录
func successLog(record *entity.GeneratedContent, output *content.GenerateOutput, elapsed time.Duration) *entity.GenerationLog {
	return &entity.GenerationLog{
		ID:               uuid.New(),
		ContentID:        &record.ID,
		BrandID:          record.BrandID,
		PromptText:       output.Prompt,
		ResponseText:     output.RawText,
		ModelName:        output.Meta.Model,
		PromptTokens:     output.Meta.PromptTokens,
		CompletionTokens: output.Meta.CompletionTokens,
		ProcessingTimeMs: elapsed.Milliseconds(),
		Status:           entity.GenerationStatusSuccess,
	}
}
