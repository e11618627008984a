package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"copytool-ai-api/internal/config"
	pkgerrors "copytool-ai-api/pkg/errors"
	"copytool-ai-api/pkg/logger"
	"copytool-ai-api/pkg/metrics"
)

var tracer = otel.Tracer("llm")

// GenerateRequest 一次生成调用的参数
type GenerateRequest struct {
	Provider    string
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// message 上游消息结构
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// upstreamRequest 上游请求体
type upstreamRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// Client 大模型调用客户端
// 直接透传 /v1/messages 协议，保留原始回复信封交给上层规整
type Client struct {
	cfg        *config.LLMConfig
	httpClient *http.Client
}

// NewClient 创建大模型客户端
func NewClient(cfg *config.LLMConfig) *Client {
	timeout := 120 * time.Second
	if p, ok := cfg.Providers[cfg.DefaultProvider]; ok && p.Timeout > 0 {
		timeout = p.Timeout
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DefaultModel 默认提供商的模型名
func (c *Client) DefaultModel() string {
	if p, ok := c.cfg.Providers[c.cfg.DefaultProvider]; ok {
		return p.Model
	}
	return ""
}

// resolveProvider 解析提供商配置
func (c *Client) resolveProvider(name string) (config.ProviderConfig, error) {
	if name == "" {
		name = c.cfg.DefaultProvider
	}
	p, ok := c.cfg.Providers[name]
	if !ok {
		return config.ProviderConfig{}, pkgerrors.New(pkgerrors.CodeInvalidParam, fmt.Sprintf("unknown llm provider: %s", name))
	}
	return p, nil
}

// Generate 调用上游生成接口并返回原始回复信封
// 传输失败与解码失败返回 TransportError，非 2xx 返回 UpstreamError
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*ReplyEnvelope, error) {
	provider, err := c.resolveProvider(req.Provider)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = provider.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = provider.MaxTokens
	}

	ctx, span := tracer.Start(ctx, "llm.Generate",
		trace.WithAttributes(
			attribute.String("llm.model", model),
			attribute.Int("llm.max_tokens", maxTokens),
			attribute.Float64("llm.temperature", req.Temperature),
		))
	defer span.End()

	body, err := json.Marshal(upstreamRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []message{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := provider.BaseURL + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", provider.APIKey)
	httpReq.Header.Set("anthropic-version", provider.APIVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		metrics.LLMCallDuration.WithLabelValues(model, "transport_error").Observe(time.Since(start).Seconds())
		return nil, &pkgerrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		metrics.LLMCallDuration.WithLabelValues(model, "transport_error").Observe(time.Since(start).Seconds())
		return nil, &pkgerrors.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetAttributes(attribute.Int("llm.status_code", resp.StatusCode))
		metrics.LLMCallDuration.WithLabelValues(model, "upstream_error").Observe(time.Since(start).Seconds())
		logger.FromContext(ctx).Warn("llm upstream returned error",
			"status", resp.StatusCode,
			"model", model,
		)
		return nil, &pkgerrors.UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var envelope ReplyEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		span.RecordError(err)
		metrics.LLMCallDuration.WithLabelValues(model, "decode_error").Observe(time.Since(start).Seconds())
		return nil, &pkgerrors.TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	metrics.LLMCallDuration.WithLabelValues(model, "success").Observe(time.Since(start).Seconds())
	metrics.LLMTokensUsed.WithLabelValues(model, "input").Add(float64(envelope.Usage.InputTokens))
	metrics.LLMTokensUsed.WithLabelValues(model, "output").Add(float64(envelope.Usage.OutputTokens))

	span.SetAttributes(
		attribute.Int("llm.input_tokens", envelope.Usage.InputTokens),
		attribute.Int("llm.output_tokens", envelope.Usage.OutputTokens),
	)

	return &envelope, nil
}
