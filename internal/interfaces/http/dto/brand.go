package dto

import (
	"time"

	"copytool-ai-api/internal/domain/entity"
)

// CreateBrandRequest 创建品牌请求
type CreateBrandRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Description     string `json:"description"`
	BrandGuidelines string `json:"brand_guidelines"`
	ToneOfVoice     string `json:"tone_of_voice"`
}

// ToBrandEntity 转换为品牌实体
func (r *CreateBrandRequest) ToBrandEntity() *entity.Brand {
	return entity.NewBrand(r.Name, r.Description, r.BrandGuidelines, r.ToneOfVoice)
}

// UpdateBrandRequest 更新品牌请求
type UpdateBrandRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	BrandGuidelines *string `json:"brand_guidelines,omitempty"`
	ToneOfVoice     *string `json:"tone_of_voice,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// Apply 将非空字段合并到品牌实体，名称变更时同步 slug
func (r *UpdateBrandRequest) Apply(brand *entity.Brand) {
	if r.Name != nil {
		brand.Name = *r.Name
		brand.Slug = entity.Slugify(*r.Name)
	}
	if r.Description != nil {
		brand.Description = *r.Description
	}
	if r.BrandGuidelines != nil {
		brand.BrandGuidelines = *r.BrandGuidelines
	}
	if r.ToneOfVoice != nil {
		brand.ToneOfVoice = *r.ToneOfVoice
	}
	if r.IsActive != nil {
		brand.IsActive = *r.IsActive
	}
}

// BrandResponse 品牌响应
type BrandResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	BrandGuidelines string    `json:"brand_guidelines,omitempty"`
	ToneOfVoice     string    `json:"tone_of_voice,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToBrandResponse 转换品牌实体为响应
func ToBrandResponse(brand *entity.Brand) *BrandResponse {
	return &BrandResponse{
		ID:              brand.ID.String(),
		Name:            brand.Name,
		Slug:            brand.Slug,
		Description:     brand.Description,
		BrandGuidelines: brand.BrandGuidelines,
		ToneOfVoice:     brand.ToneOfVoice,
		IsActive:        brand.IsActive,
		CreatedAt:       brand.CreatedAt,
		UpdatedAt:       brand.UpdatedAt,
	}
}

// ToBrandListResponse 转换品牌列表为响应
func ToBrandListResponse(brands []*entity.Brand) []*BrandResponse {
	out := make([]*BrandResponse, 0, len(brands))
	for _, brand := range brands {
		out = append(out, ToBrandResponse(brand))
	}
	return out
}
