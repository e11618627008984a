package entity

import (
	"time"

	"github.com/google/uuid"
)

// GenerationLog 一次模型调用的审计记录
// 无论调用成败都会写入，失败时 ContentID 为空
type GenerationLog struct {
	ID               uuid.UUID  `json:"id"`
	ContentID        *uuid.UUID `json:"content_id,omitempty"`
	BrandID          *uuid.UUID `json:"brand_id,omitempty"`
	PromptText       string     `json:"prompt_text"`
	ResponseText     string     `json:"response_text"`
	ModelName        string     `json:"model_name"`
	PromptTokens     int        `json:"prompt_tokens"`
	CompletionTokens int        `json:"completion_tokens"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
	Status           string     `json:"status"`
	ErrorMessage     string     `json:"error_message,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
