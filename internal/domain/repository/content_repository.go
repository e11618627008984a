package repository

import (
	"context"

	"github.com/google/uuid"

	"copytool-ai-api/internal/domain/entity"
)

// ContentRepository 生成内容数据访问接口
type ContentRepository interface {
	// Create 创建生成内容记录
	Create(ctx context.Context, content *entity.GeneratedContent) error
	// GetByID 根据 ID 获取内容
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedContent, error)
	// ListByBrand 分页列出品牌下的内容
	ListByBrand(ctx context.Context, brandID uuid.UUID, pagination Pagination) (*PagedResult[*entity.GeneratedContent], error)
	// Update 更新内容记录
	Update(ctx context.Context, content *entity.GeneratedContent) error
	// Delete 删除内容
	Delete(ctx context.Context, id uuid.UUID) error
}
