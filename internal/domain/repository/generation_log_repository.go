package repository

import (
	"context"

	"github.com/google/uuid"

	"copytool-ai-api/internal/domain/entity"
)

// GenerationLogRepository 生成日志数据访问接口
type GenerationLogRepository interface {
	// Create 写入一条生成日志
	Create(ctx context.Context, log *entity.GenerationLog) error
	// ListByBrand 分页列出品牌下的生成日志
	ListByBrand(ctx context.Context, brandID uuid.UUID, pagination Pagination) (*PagedResult[*entity.GenerationLog], error)
}
