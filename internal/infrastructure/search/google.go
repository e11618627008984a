// Package search 提供 Google Custom Search 调用客户端
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"copytool-ai-api/internal/config"
	pkgerrors "copytool-ai-api/pkg/errors"
	"copytool-ai-api/pkg/metrics"
)

var tracer = otel.Tracer("search")

// Result 单条搜索结果
type Result struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// searchResponse Google CSE 响应体
type searchResponse struct {
	Items []Result `json:"items"`
}

// Client Google Custom Search 客户端
type Client struct {
	cfg        *config.GoogleSearchConfig
	httpClient *http.Client
}

// NewClient 创建搜索客户端
func NewClient(cfg *config.GoogleSearchConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search 执行一次关键词搜索
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "search.Search",
		trace.WithAttributes(attribute.String("search.query", query)))
	defer span.End()

	num := c.cfg.NumResults
	if num <= 0 {
		num = 10
	}

	params := url.Values{}
	params.Set("key", c.cfg.APIKey)
	params.Set("cx", c.cfg.CX)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	endpoint := c.cfg.Endpoint + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		metrics.SerpSearchTotal.WithLabelValues("transport_error").Inc()
		return nil, &pkgerrors.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		metrics.SerpSearchTotal.WithLabelValues("transport_error").Inc()
		return nil, &pkgerrors.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetAttributes(attribute.Int("search.status_code", resp.StatusCode))
		metrics.SerpSearchTotal.WithLabelValues("upstream_error").Inc()
		return nil, &pkgerrors.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		span.RecordError(err)
		metrics.SerpSearchTotal.WithLabelValues("decode_error").Inc()
		return nil, &pkgerrors.TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	metrics.SerpSearchTotal.WithLabelValues("success").Inc()
	span.SetAttributes(attribute.Int("search.result_count", len(decoded.Items)))

	return decoded.Items, nil
}
