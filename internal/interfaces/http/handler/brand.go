package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/domain/repository"
	"copytool-ai-api/internal/infrastructure/persistence/redis"
	"copytool-ai-api/internal/interfaces/http/dto"
	"copytool-ai-api/pkg/errors"
	"copytool-ai-api/pkg/logger"
)

// BrandHandler 品牌处理器
type BrandHandler struct {
	brandRepo repository.BrandRepository
	cache     *redis.Cache
	cacheTTL  time.Duration
}

// NewBrandHandler 创建品牌处理器
func NewBrandHandler(brandRepo repository.BrandRepository, cache *redis.Cache, cacheTTL time.Duration) *BrandHandler {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &BrandHandler{
		brandRepo: brandRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// ResolveBrand 读穿缓存加载品牌，未找到时返回 nil
func (h *BrandHandler) ResolveBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	if h.cache == nil {
		return h.brandRepo.GetByID(ctx, id)
	}

	raw, err := h.cache.GetOrLoadSafe(ctx, redis.BrandKey(id), h.cacheTTL, func() (interface{}, error) {
		return h.brandRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	var brand *entity.Brand
	if err := json.Unmarshal(raw, &brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// ListBrands 获取品牌列表
func (h *BrandHandler) ListBrands(c *gin.Context) {
	ctx := c.Request.Context()

	pageReq := dto.BindPage(c)
	activeOnly := c.Query("active") == "true"

	result, err := h.brandRepo.List(ctx, repository.NewPagination(pageReq.Page, pageReq.PageSize), activeOnly)
	if err != nil {
		logger.Error(ctx, "failed to list brands", err)
		dto.InternalError(c, "failed to list brands")
		return
	}

	resp := dto.ToBrandListResponse(result.Items)
	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, resp, meta)
}

// CreateBrand 创建品牌
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	brand := req.ToBrandEntity()

	if err := h.brandRepo.Create(ctx, brand); err != nil {
		if appErr := errors.AsAppError(err); appErr != nil && appErr.Code == errors.CodeConflict {
			dto.Conflict(c, appErr.Message)
			return
		}
		logger.Error(ctx, "failed to create brand", err)
		dto.InternalError(c, "failed to create brand")
		return
	}

	dto.Created(c, dto.ToBrandResponse(brand))
}

// GetBrand 获取品牌详情
func (h *BrandHandler) GetBrand(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(dto.BindBrandID(c))
	if err != nil {
		dto.BadRequest(c, "invalid brand id")
		return
	}

	brand, err := h.ResolveBrand(ctx, id)
	if err != nil {
		logger.Error(ctx, "failed to get brand", err)
		dto.InternalError(c, "failed to get brand")
		return
	}
	if brand == nil {
		dto.NotFound(c, "brand not found")
		return
	}

	dto.Success(c, dto.ToBrandResponse(brand))
}

// UpdateBrand 更新品牌
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(dto.BindBrandID(c))
	if err != nil {
		dto.BadRequest(c, "invalid brand id")
		return
	}

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	brand, err := h.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "failed to load brand", err)
		dto.InternalError(c, "failed to update brand")
		return
	}
	if brand == nil {
		dto.NotFound(c, "brand not found")
		return
	}

	oldSlug := brand.Slug
	req.Apply(brand)

	if err := h.brandRepo.Update(ctx, brand); err != nil {
		logger.Error(ctx, "failed to update brand", err)
		dto.InternalError(c, "failed to update brand")
		return
	}

	h.invalidate(ctx, brand.ID, oldSlug, brand.Slug)

	dto.Success(c, dto.ToBrandResponse(brand))
}

// DeleteBrand 删除品牌
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(dto.BindBrandID(c))
	if err != nil {
		dto.BadRequest(c, "invalid brand id")
		return
	}

	brand, err := h.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "failed to load brand", err)
		dto.InternalError(c, "failed to delete brand")
		return
	}
	if brand == nil {
		dto.NotFound(c, "brand not found")
		return
	}

	if err := h.brandRepo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "failed to delete brand", err)
		dto.InternalError(c, "failed to delete brand")
		return
	}

	h.invalidate(ctx, id, brand.Slug, "")

	dto.NoContent(c)
}

// invalidate 清除品牌缓存，失败只记日志
func (h *BrandHandler) invalidate(ctx context.Context, id uuid.UUID, slugs ...string) {
	if h.cache == nil {
		return
	}
	keys := []string{redis.BrandKey(id)}
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, redis.BrandSlugKey(slug))
		}
	}
	if err := h.cache.Delete(ctx, keys...); err != nil {
		logger.Warn(ctx, "failed to invalidate brand cache", "error", err.Error())
	}
}
