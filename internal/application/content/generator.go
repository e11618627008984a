package content

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"copytool-ai-api/internal/config"
	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/infrastructure/llm"
	"copytool-ai-api/pkg/logger"
	"copytool-ai-api/pkg/metrics"
)

var tracer = otel.Tracer("content")

// 生成调用的固定采样温度
const generationTemperature = 0.7

// LLMUsageMeta 一次生成调用的用量元数据
type LLMUsageMeta struct {
	Model            string    `json:"model"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	Temperature      float64   `json:"temperature"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// GenerateOutput 生成管线的完整产出
type GenerateOutput struct {
	Record  entity.ContentRecord
	Prompt  string
	RawText string
	Meta    LLMUsageMeta
}

// Generator 文案生成器，串联提示词构建、模型调用与结果规整
type Generator struct {
	llm *llm.Client
	cfg *config.GenerationConfig
}

// NewGenerator 创建文案生成器
func NewGenerator(client *llm.Client, cfg *config.GenerationConfig) *Generator {
	return &Generator{llm: client, cfg: cfg}
}

// Generate 执行一次完整的生成调用
// 仅模型调用本身可能失败；提示词构建与结果规整永不报错
func (g *Generator) Generate(ctx context.Context, form *FormInput, brand *entity.Brand) (*GenerateOutput, error) {
	ctx, span := tracer.Start(ctx, "content.Generate",
		trace.WithAttributes(attribute.String("content.type", form.ContentType)))
	defer span.End()

	if form.Language == "" {
		form.Language = g.cfg.DefaultLanguage
	}

	prompt := BuildPrompt(form, brand)

	maxTokens := g.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4000
	}

	start := time.Now()
	envelope, err := g.llm.Generate(ctx, &llm.GenerateRequest{
		Model:       form.Model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		span.RecordError(err)
		metrics.ContentGenerationTotal.WithLabelValues(form.ContentType, "failed").Inc()
		return nil, err
	}

	record := Normalize(envelope, form.ContentType)
	rawText, _ := envelope.FirstText()

	metrics.ContentGenerationTotal.WithLabelValues(form.ContentType, "success").Inc()
	metrics.ContentGenerationDuration.WithLabelValues(form.ContentType).Observe(time.Since(start).Seconds())

	logger.FromContext(ctx).Info("content generated",
		"content_type", form.ContentType,
		"model", envelope.Model,
		"input_tokens", envelope.Usage.InputTokens,
		"output_tokens", envelope.Usage.OutputTokens,
	)

	return &GenerateOutput{
		Record:  record,
		Prompt:  prompt,
		RawText: rawText,
		Meta: LLMUsageMeta{
			Model:            envelope.Model,
			PromptTokens:     envelope.Usage.InputTokens,
			CompletionTokens: envelope.Usage.OutputTokens,
			Temperature:      generationTemperature,
			GeneratedAt:      time.Now(),
		},
	}, nil
}
