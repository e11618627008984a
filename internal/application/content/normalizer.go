package content

import (
	"encoding/json"
	"strings"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/infrastructure/llm"
	"copytool-ai-api/pkg/metrics"
)

// PlaceholderContent 上游未产出任何文本时的占位内容
const PlaceholderContent = "Geen content gegenereerd"

// Normalize 将原始回复信封规整为强类型的内容记录
// 永不失败：解析失败时降级为仅含 mainContent 的回退记录
func Normalize(envelope *llm.ReplyEnvelope, contentType string) entity.ContentRecord {
	text, ok := envelope.FirstText()
	if !ok || strings.TrimSpace(text) == "" {
		metrics.ContentParseOutcome.WithLabelValues(contentType, "fallback").Inc()
		return fallbackRecord(contentType, PlaceholderContent)
	}

	cleaned := StripFences(text)

	record, err := parseStructured(cleaned)
	if err != nil {
		metrics.ContentParseOutcome.WithLabelValues(contentType, "fallback").Inc()
		return fallbackRecord(contentType, cleaned)
	}

	record.ContentType = contentType
	if record.MainContent == "" {
		// 模型偶尔把所有文本放在 socialMediaPost，保证 mainContent 非空
		if record.SocialMediaPost != "" {
			record.MainContent = record.SocialMediaPost
		} else {
			record.MainContent = cleaned
		}
	}

	metrics.ContentParseOutcome.WithLabelValues(contentType, "parsed").Inc()
	return record
}

// StripFences 去除模型包裹在结构化内容外的代码围栏
// 同时处理带语言标签（```json）与裸围栏（```）两种形态
func StripFences(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		// 去掉第一行的开围栏（含可能的语言标签）
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}
	if strings.HasSuffix(strings.TrimSpace(cleaned), "```") {
		trimmed := strings.TrimSpace(cleaned)
		cleaned = trimmed[:len(trimmed)-3]
	}

	return strings.TrimSpace(cleaned)
}

// parseStructured 尝试把清理后的文本当作结构化记录解析
func parseStructured(cleaned string) (entity.ContentRecord, error) {
	var record entity.ContentRecord
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return entity.ContentRecord{}, err
	}
	return record, nil
}

func fallbackRecord(contentType, mainContent string) entity.ContentRecord {
	return entity.ContentRecord{
		ContentType: contentType,
		MainContent: mainContent,
	}
}
