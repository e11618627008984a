// Package llm 提供大模型 HTTP 调用客户端
package llm

import (
	"encoding/json"
	"strings"
)

// 文本来源形态
// 上游回复的文本可能出现在三种位置，解码时逐一识别
type sourceKind int

const (
	sourceNone sourceKind = iota
	// sourcePlainString content 字段直接是字符串
	sourcePlainString
	// sourceFragmentList content 字段是分片数组
	sourceFragmentList
	// sourceDirectTextField 顶层 text 字段
	sourceDirectTextField
)

// Fragment content 数组中的一个分片
type Fragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ReplyContent 回复内容，解码时归类为三种形态之一
type ReplyContent struct {
	kind      sourceKind
	plain     string
	fragments []Fragment
}

// UnmarshalJSON 兼容字符串与分片数组两种形态
func (c *ReplyContent) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		c.kind = sourceNone
		return nil
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		c.kind = sourcePlainString
		c.plain = plain
		return nil
	}

	var fragments []Fragment
	if err := json.Unmarshal(data, &fragments); err == nil {
		c.kind = sourceFragmentList
		c.fragments = fragments
		return nil
	}

	// 无法识别的形态按缺失处理，不让整个响应解码失败
	c.kind = sourceNone
	return nil
}

// Usage token 用量统计
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// ReplyEnvelope 上游回复信封
type ReplyEnvelope struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Content ReplyContent `json:"content"`
	// Text 部分兼容实现把文本放在顶层字段
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// FirstText 提取回复中的主文本
// 依次尝试：content 字符串、content 分片数组、顶层 text 字段
func (e *ReplyEnvelope) FirstText() (string, bool) {
	if e == nil {
		return "", false
	}

	switch e.Content.kind {
	case sourcePlainString:
		if e.Content.plain != "" {
			return e.Content.plain, true
		}
	case sourceFragmentList:
		var sb strings.Builder
		for _, frag := range e.Content.fragments {
			if frag.Type == "text" {
				sb.WriteString(frag.Text)
			}
		}
		if sb.Len() > 0 {
			return sb.String(), true
		}
	}

	if e.Text != "" {
		return e.Text, true
	}

	return "", false
}
