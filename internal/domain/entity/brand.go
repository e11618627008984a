// Package entity 定义领域实体
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Brand 品牌实体
// 品牌承载生成文案时注入提示词的风格约束
type Brand struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	BrandGuidelines string    `json:"brand_guidelines"`
	ToneOfVoice     string    `json:"tone_of_voice"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewBrand 创建品牌实体
func NewBrand(name, description, guidelines, toneOfVoice string) *Brand {
	now := time.Now()
	return &Brand{
		ID:              uuid.New(),
		Name:            name,
		Slug:            Slugify(name),
		Description:     description,
		BrandGuidelines: guidelines,
		ToneOfVoice:     toneOfVoice,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasStyleHints 品牌是否携带可注入提示词的风格信息
func (b *Brand) HasStyleHints() bool {
	return b != nil && (b.BrandGuidelines != "" || b.ToneOfVoice != "")
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 将名称转换为 URL 友好的 slug
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
