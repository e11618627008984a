package entity

import (
	"time"

	"github.com/google/uuid"
)

// 内容类型
const (
	ContentTypeBlogPost    = "blog-post"
	ContentTypeWebPage     = "web-page"
	ContentTypeEmail       = "email"
	ContentTypeSocialMedia = "social-media"
)

// 生成状态
const (
	GenerationStatusSuccess = "success"
	GenerationStatusFailed  = "failed"
)

// ContentSection 结构化内容中的一个小节
type ContentSection struct {
	Header     string `json:"header"`
	HeaderType string `json:"headerType"`
	Content    string `json:"content"`
}

// ContentRecord 规整后的生成结果
// JSON 标签与模型被要求输出的字段名保持一致
type ContentRecord struct {
	ContentType     string           `json:"contentType,omitempty"`
	MainContent     string           `json:"mainContent"`
	MetaTitle       string           `json:"metaTitle,omitempty"`
	MetaDescription string           `json:"metaDescription,omitempty"`
	H1              string           `json:"h1,omitempty"`
	Intro           string           `json:"intro,omitempty"`
	Sections        []ContentSection `json:"sections,omitempty"`
	EmailSubject    string           `json:"emailSubject,omitempty"`
	EmailPreheader  string           `json:"emailPreheader,omitempty"`
	SocialMediaPost string           `json:"socialMediaPost,omitempty"`
	Hashtags        []string         `json:"hashtags,omitempty"`
	CallToAction    string           `json:"callToAction,omitempty"`
}

// GeneratedContent 持久化的生成内容
type GeneratedContent struct {
	ID           uuid.UUID      `json:"id"`
	BrandID      *uuid.UUID     `json:"brand_id,omitempty"`
	ContentType  string         `json:"content_type"`
	Record       ContentRecord  `json:"record"`
	FormSnapshot map[string]any `json:"form_snapshot,omitempty"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// KnownContentType 内容类型是否为已知类型
func KnownContentType(ct string) bool {
	switch ct {
	case ContentTypeBlogPost, ContentTypeWebPage, ContentTypeEmail, ContentTypeSocialMedia:
		return true
	}
	return false
}
