package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/domain/repository"
)

// GenerationLogRepository 生成日志仓储实现
type GenerationLogRepository struct {
	client *Client
}

// NewGenerationLogRepository 创建生成日志仓储
func NewGenerationLogRepository(client *Client) *GenerationLogRepository {
	return &GenerationLogRepository{client: client}
}

// Create 写入一条生成日志
func (r *GenerationLogRepository) Create(ctx context.Context, log *entity.GenerationLog) error {
	ctx, span := tracer.Start(ctx, "postgres.GenerationLogRepository.Create")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		INSERT INTO generation_logs (id, content_id, brand_id, prompt_text, response_text, model_name,
			prompt_tokens, completion_tokens, processing_time_ms, status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`

	var contentID, brandID any
	if log.ContentID != nil {
		contentID = *log.ContentID
	}
	if log.BrandID != nil {
		brandID = *log.BrandID
	}

	var errorMessage sql.NullString
	if log.ErrorMessage != "" {
		errorMessage = sql.NullString{String: log.ErrorMessage, Valid: true}
	}

	err := q.QueryRowContext(ctx, query,
		log.ID, contentID, brandID, log.PromptText, log.ResponseText, log.ModelName,
		log.PromptTokens, log.CompletionTokens, log.ProcessingTimeMs, log.Status, errorMessage,
	).Scan(&log.CreatedAt)

	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create generation log: %w", err)
	}

	return nil
}

// ListByBrand 分页列出品牌下的生成日志
func (r *GenerationLogRepository) ListByBrand(ctx context.Context, brandID uuid.UUID, pagination repository.Pagination) (*repository.PagedResult[*entity.GenerationLog], error) {
	ctx, span := tracer.Start(ctx, "postgres.GenerationLogRepository.ListByBrand")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM generation_logs WHERE brand_id = $1`
	if err := q.QueryRowContext(ctx, countQuery, brandID).Scan(&total); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count generation logs: %w", err)
	}

	query := `
		SELECT id, content_id, brand_id, prompt_text, response_text, model_name,
			prompt_tokens, completion_tokens, processing_time_ms, status, error_message, created_at
		FROM generation_logs
		WHERE brand_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.QueryContext(ctx, query, brandID, pagination.Limit(), pagination.Offset())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list generation logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.GenerationLog
	for rows.Next() {
		var log entity.GenerationLog
		var contentID, logBrandID uuid.NullUUID
		var errorMessage sql.NullString

		if err := rows.Scan(
			&log.ID, &contentID, &logBrandID, &log.PromptText, &log.ResponseText, &log.ModelName,
			&log.PromptTokens, &log.CompletionTokens, &log.ProcessingTimeMs, &log.Status, &errorMessage,
			&log.CreatedAt,
		); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan generation log: %w", err)
		}

		if contentID.Valid {
			log.ContentID = &contentID.UUID
		}
		if logBrandID.Valid {
			log.BrandID = &logBrandID.UUID
		}
		if errorMessage.Valid {
			log.ErrorMessage = errorMessage.String
		}
		logs = append(logs, &log)
	}

	return repository.NewPagedResult(logs, total, pagination), nil
}
