// Package serp 实现搜索结果分析与内容小节提取
package serp

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"copytool-ai-api/internal/config"
	"copytool-ai-api/internal/infrastructure/llm"
	"copytool-ai-api/internal/infrastructure/search"
	"copytool-ai-api/pkg/metrics"
)

var tracer = otel.Tracer("serp")

// 分析调用用较低温度换取更确定的输出
const analysisTemperature = 0.5

// PlaceholderAnalysis 上游未产出任何文本时的占位分析
const PlaceholderAnalysis = "Geen analyse beschikbaar"

const analysisPromptTemplate = `
Analyseer het volgende zoekresultaat voor het keyword %q:

Titel: %s
URL: %s
Snippet: %s

Geef een gedetailleerde analyse van:
1. Wat maakt deze content waardevol?
2. Welke onderwerpen worden behandeld?
3. Hoe kunnen we vergelijkbare content maken?
4. Welke secties zouden we kunnen toevoegen aan onze content?

Geef ook een voorstel voor een H2 sectie die we kunnen toevoegen aan onze content, inclusief:
- H2 titel
- Korte beschrijving van wat er in die sectie moet komen
`

// Analyzer 搜索结果分析器
type Analyzer struct {
	llm *llm.Client
	cfg *config.GenerationConfig
}

// NewAnalyzer 创建分析器
func NewAnalyzer(client *llm.Client, cfg *config.GenerationConfig) *Analyzer {
	return &Analyzer{llm: client, cfg: cfg}
}

// Analyze 让模型分析一条搜索结果，返回叙述性分析文本
// 该路径产出散文而非结构化数据，只做文本提取不做解析
func (a *Analyzer) Analyze(ctx context.Context, result *search.Result, focusKeyword string) (string, error) {
	ctx, span := tracer.Start(ctx, "serp.Analyze",
		trace.WithAttributes(attribute.String("serp.keyword", focusKeyword)))
	defer span.End()

	prompt := fmt.Sprintf(analysisPromptTemplate, focusKeyword, result.Title, result.Link, result.Snippet)

	maxTokens := a.cfg.AnalysisMaxTokens
	if maxTokens <= 0 {
		maxTokens = 2000
	}

	envelope, err := a.llm.Generate(ctx, &llm.GenerateRequest{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		span.RecordError(err)
		metrics.SerpAnalysisTotal.WithLabelValues("failed").Inc()
		return "", err
	}

	text, ok := envelope.FirstText()
	if !ok || strings.TrimSpace(text) == "" {
		metrics.SerpAnalysisTotal.WithLabelValues("empty").Inc()
		return PlaceholderAnalysis, nil
	}

	metrics.SerpAnalysisTotal.WithLabelValues("success").Inc()
	return text, nil
}
