package repository

import (
	"context"

	"github.com/google/uuid"

	"copytool-ai-api/internal/domain/entity"
)

// BrandRepository 品牌数据访问接口
type BrandRepository interface {
	// Create 创建品牌
	Create(ctx context.Context, brand *entity.Brand) error
	// GetByID 根据 ID 获取品牌
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	// GetBySlug 根据 slug 获取品牌
	GetBySlug(ctx context.Context, slug string) (*entity.Brand, error)
	// List 分页列出品牌
	List(ctx context.Context, pagination Pagination, activeOnly bool) (*PagedResult[*entity.Brand], error)
	// Update 更新品牌
	Update(ctx context.Context, brand *entity.Brand) error
	// Delete 删除品牌
	Delete(ctx context.Context, id uuid.UUID) error
}
