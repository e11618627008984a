package dto

import (
	"time"

	"github.com/google/uuid"

	"copytool-ai-api/internal/application/content"
	"copytool-ai-api/internal/domain/entity"
)

// SectionRequest 表单小节
type SectionRequest struct {
	HeaderType    string `json:"headerType" binding:"required"`
	HeaderSubject string `json:"headerSubject" binding:"required"`
	Content       string `json:"content"`
}

// GenerateContentRequest 文案生成请求
type GenerateContentRequest struct {
	ContentType       string           `json:"contentType" binding:"required"`
	Language          string           `json:"language"`
	Model             string           `json:"model"`
	FocusKeyword      string           `json:"focusKeyword"`
	SecondaryKeywords string           `json:"secondaryKeywords"`
	MinWordCount      string           `json:"minWordCount"`
	MaxWordCount      string           `json:"maxWordCount"`
	Summary           string           `json:"summary"`
	PostGoal          string           `json:"postGoal"`
	BackgroundInfo    string           `json:"backgroundInfo"`
	TargetURL         string           `json:"targetUrl"`
	SocialPlatform    string           `json:"socialPlatform"`
	EmailSubject      string           `json:"emailSubject"`
	EmailType         string           `json:"emailType"`
	ExampleText       string           `json:"exampleText"`
	Sections          []SectionRequest `json:"sections"`
}

// ToFormInput 转换为表单输入，小节分配生成的唯一标识
func (r *GenerateContentRequest) ToFormInput() *content.FormInput {
	sections := make([]content.Section, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, content.Section{
			ID:            uuid.NewString(),
			HeaderType:    s.HeaderType,
			HeaderSubject: s.HeaderSubject,
			Content:       s.Content,
		})
	}

	return &content.FormInput{
		ContentType:       r.ContentType,
		Language:          r.Language,
		Model:             r.Model,
		FocusKeyword:      r.FocusKeyword,
		SecondaryKeywords: r.SecondaryKeywords,
		MinWordCount:      r.MinWordCount,
		MaxWordCount:      r.MaxWordCount,
		Summary:           r.Summary,
		PostGoal:          r.PostGoal,
		BackgroundInfo:    r.BackgroundInfo,
		TargetURL:         r.TargetURL,
		SocialPlatform:    r.SocialPlatform,
		EmailSubject:      r.EmailSubject,
		EmailType:         r.EmailType,
		ExampleText:       r.ExampleText,
		Sections:          sections,
	}
}

// FormSnapshot 表单快照，随生成内容一并持久化
func (r *GenerateContentRequest) FormSnapshot() map[string]any {
	snapshot := map[string]any{
		"contentType": r.ContentType,
	}
	if r.Language != "" {
		snapshot["language"] = r.Language
	}
	if r.FocusKeyword != "" {
		snapshot["focusKeyword"] = r.FocusKeyword
	}
	if r.SocialPlatform != "" {
		snapshot["socialPlatform"] = r.SocialPlatform
	}
	if r.Summary != "" {
		snapshot["summary"] = r.Summary
	}
	if len(r.Sections) > 0 {
		snapshot["sections"] = r.Sections
	}
	return snapshot
}

// GenerationMetaResponse 生成调用元数据
type GenerationMetaResponse struct {
	Model            string    `json:"model"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	Temperature      float64   `json:"temperature"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// GeneratedContentResponse 生成内容响应
type GeneratedContentResponse struct {
	ID          string                  `json:"id"`
	BrandID     string                  `json:"brand_id,omitempty"`
	ContentType string                  `json:"content_type"`
	Record      entity.ContentRecord    `json:"record"`
	Status      string                  `json:"status"`
	Meta        *GenerationMetaResponse `json:"meta,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// ToGeneratedContentResponse 转换生成内容实体为响应
func ToGeneratedContentResponse(c *entity.GeneratedContent, meta *content.LLMUsageMeta) *GeneratedContentResponse {
	resp := &GeneratedContentResponse{
		ID:          c.ID.String(),
		ContentType: c.ContentType,
		Record:      c.Record,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.BrandID != nil {
		resp.BrandID = c.BrandID.String()
	}
	if meta != nil {
		resp.Meta = &GenerationMetaResponse{
			Model:            meta.Model,
			PromptTokens:     meta.PromptTokens,
			CompletionTokens: meta.CompletionTokens,
			Temperature:      meta.Temperature,
			GeneratedAt:      meta.GeneratedAt,
		}
	}
	return resp
}

// ToGeneratedContentListResponse 转换生成内容列表为响应
func ToGeneratedContentListResponse(items []*entity.GeneratedContent) []*GeneratedContentResponse {
	out := make([]*GeneratedContentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToGeneratedContentResponse(item, nil))
	}
	return out
}

// UpdateContentRequest 更新生成内容请求
type UpdateContentRequest struct {
	Record entity.ContentRecord `json:"record" binding:"required"`
}
