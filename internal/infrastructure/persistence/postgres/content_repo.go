package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/domain/repository"
)

// ContentRepository 生成内容仓储实现
type ContentRepository struct {
	client *Client
}

// NewContentRepository 创建生成内容仓储
func NewContentRepository(client *Client) *ContentRepository {
	return &ContentRepository{client: client}
}

// Create 创建生成内容记录
func (r *ContentRepository) Create(ctx context.Context, content *entity.GeneratedContent) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.Create")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	recordJSON, _ := json.Marshal(content.Record)
	snapshotJSON, _ := json.Marshal(content.FormSnapshot)

	query := `
		INSERT INTO generated_contents (id, brand_id, content_type, record, form_snapshot, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	var brandID any
	if content.BrandID != nil {
		brandID = *content.BrandID
	}

	err := q.QueryRowContext(ctx, query,
		content.ID, brandID, content.ContentType, recordJSON, snapshotJSON, content.Status,
	).Scan(&content.CreatedAt, &content.UpdatedAt)

	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create generated content: %w", err)
	}

	return nil
}

// GetByID 根据 ID 获取内容
func (r *ContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedContent, error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.GetByID")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		SELECT id, brand_id, content_type, record, form_snapshot, status, created_at, updated_at
		FROM generated_contents
		WHERE id = $1
	`

	content, err := scanContent(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get generated content: %w", err)
	}

	return content, nil
}

// ListByBrand 分页列出品牌下的内容
func (r *ContentRepository) ListByBrand(ctx context.Context, brandID uuid.UUID, pagination repository.Pagination) (*repository.PagedResult[*entity.GeneratedContent], error) {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.ListByBrand")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM generated_contents WHERE brand_id = $1`
	if err := q.QueryRowContext(ctx, countQuery, brandID).Scan(&total); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count generated contents: %w", err)
	}

	query := `
		SELECT id, brand_id, content_type, record, form_snapshot, status, created_at, updated_at
		FROM generated_contents
		WHERE brand_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.QueryContext(ctx, query, brandID, pagination.Limit(), pagination.Offset())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list generated contents: %w", err)
	}
	defer rows.Close()

	var contents []*entity.GeneratedContent
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan generated content: %w", err)
		}
		contents = append(contents, content)
	}

	return repository.NewPagedResult(contents, total, pagination), nil
}

// Update 更新内容记录
func (r *ContentRepository) Update(ctx context.Context, content *entity.GeneratedContent) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.Update")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	recordJSON, _ := json.Marshal(content.Record)

	query := `
		UPDATE generated_contents
		SET record = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := q.QueryRowContext(ctx, query, recordJSON, content.Status, content.ID).Scan(&content.UpdatedAt)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update generated content: %w", err)
	}

	return nil
}

// Delete 删除内容
func (r *ContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "postgres.ContentRepository.Delete")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `DELETE FROM generated_contents WHERE id = $1`
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete generated content: %w", err)
	}

	return nil
}

// rowScanner 兼容 sql.Row 和 sql.Rows 的扫描接口
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContent(row rowScanner) (*entity.GeneratedContent, error) {
	var content entity.GeneratedContent
	var brandID uuid.NullUUID
	var recordJSON, snapshotJSON []byte

	if err := row.Scan(
		&content.ID, &brandID, &content.ContentType,
		&recordJSON, &snapshotJSON, &content.Status,
		&content.CreatedAt, &content.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if brandID.Valid {
		content.BrandID = &brandID.UUID
	}
	json.Unmarshal(recordJSON, &content.Record)
	json.Unmarshal(snapshotJSON, &content.FormSnapshot)

	return &content, nil
}
