// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/domain/repository"
	pkgerrors "copytool-ai-api/pkg/errors"
)

// BrandRepository 品牌仓储实现
type BrandRepository struct {
	client *Client
}

// NewBrandRepository 创建品牌仓储
func NewBrandRepository(client *Client) *BrandRepository {
	return &BrandRepository{client: client}
}

// Create 创建品牌
func (r *BrandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.Create")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		INSERT INTO brands (id, name, slug, description, brand_guidelines, tone_of_voice, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRowContext(ctx, query,
		brand.ID, brand.Name, brand.Slug, brand.Description,
		brand.BrandGuidelines, brand.ToneOfVoice, brand.IsActive,
	).Scan(&brand.CreatedAt, &brand.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return pkgerrors.Wrap(err, pkgerrors.CodeConflict, "brand slug already exists")
		}
		span.RecordError(err)
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return nil
}

// GetByID 根据 ID 获取品牌
func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.GetByID")
	defer span.End()

	return r.getByColumn(ctx, "id", id)
}

// GetBySlug 根据 slug 获取品牌
func (r *BrandRepository) GetBySlug(ctx context.Context, slug string) (*entity.Brand, error) {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.GetBySlug")
	defer span.End()

	return r.getByColumn(ctx, "slug", slug)
}

func (r *BrandRepository) getByColumn(ctx context.Context, column string, value any) (*entity.Brand, error) {
	q := getQuerier(ctx, r.client.db)

	query := fmt.Sprintf(`
		SELECT id, name, slug, description, brand_guidelines, tone_of_voice, is_active, created_at, updated_at
		FROM brands
		WHERE %s = $1
	`, column)

	var brand entity.Brand
	err := q.QueryRowContext(ctx, query, value).Scan(
		&brand.ID, &brand.Name, &brand.Slug, &brand.Description,
		&brand.BrandGuidelines, &brand.ToneOfVoice, &brand.IsActive,
		&brand.CreatedAt, &brand.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &brand, nil
}

// List 分页列出品牌
func (r *BrandRepository) List(ctx context.Context, pagination repository.Pagination, activeOnly bool) (*repository.PagedResult[*entity.Brand], error) {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.List")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	whereClause := "1=1"
	if activeOnly {
		whereClause += " AND is_active = TRUE"
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM brands WHERE %s`, whereClause)
	if err := q.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count brands: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, slug, description, brand_guidelines, tone_of_voice, is_active, created_at, updated_at
		FROM brands
		WHERE %s
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`, whereClause)

	rows, err := q.QueryContext(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []*entity.Brand
	for rows.Next() {
		var brand entity.Brand
		if err := rows.Scan(
			&brand.ID, &brand.Name, &brand.Slug, &brand.Description,
			&brand.BrandGuidelines, &brand.ToneOfVoice, &brand.IsActive,
			&brand.CreatedAt, &brand.UpdatedAt,
		); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, &brand)
	}

	return repository.NewPagedResult(brands, total, pagination), nil
}

// Update 更新品牌
func (r *BrandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.Update")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `
		UPDATE brands
		SET name = $1, slug = $2, description = $3, brand_guidelines = $4, tone_of_voice = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	err := q.QueryRowContext(ctx, query,
		brand.Name, brand.Slug, brand.Description,
		brand.BrandGuidelines, brand.ToneOfVoice, brand.IsActive, brand.ID,
	).Scan(&brand.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return pkgerrors.ErrBrandNotFound
		}
		span.RecordError(err)
		return fmt.Errorf("failed to update brand: %w", err)
	}

	return nil
}

// Delete 删除品牌
func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "postgres.BrandRepository.Delete")
	defer span.End()

	q := getQuerier(ctx, r.client.db)

	query := `DELETE FROM brands WHERE id = $1`
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete brand: %w", err)
	}

	return nil
}
