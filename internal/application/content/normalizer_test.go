package content

import (
	"encoding/json"
	"testing"

	"copytool-ai-api/internal/domain/entity"
	"copytool-ai-api/internal/infrastructure/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelopeWithText 构造只含顶层 text 字段的回复信封
func envelopeWithText(t *testing.T, text string) *llm.ReplyEnvelope {
	t.Helper()

	raw, err := json.Marshal(map[string]any{"text": text})
	require.NoError(t, err)

	var envelope llm.ReplyEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return &envelope
}

func TestNormalize_StructuredJSON(t *testing.T) {
	envelope := envelopeWithText(t, `{"mainContent":"Hello","metaTitle":"T"}`)

	record := Normalize(envelope, entity.ContentTypeBlogPost)

	assert.Equal(t, entity.ContentTypeBlogPost, record.ContentType)
	assert.Equal(t, "Hello", record.MainContent)
	assert.Equal(t, "T", record.MetaTitle)
}

func TestNormalize_FencedJSON(t *testing.T) {
	envelope := envelopeWithText(t, "```json\n{\"mainContent\":\"Hello\"}\n```")

	record := Normalize(envelope, entity.ContentTypeWebPage)

	assert.Equal(t, "Hello", record.MainContent)
}

func TestNormalize_BareFence(t *testing.T) {
	envelope := envelopeWithText(t, "```\n{\"mainContent\":\"Hello\"}\n```")

	record := Normalize(envelope, entity.ContentTypeWebPage)

	assert.Equal(t, "Hello", record.MainContent)
}

func TestNormalize_NonJSONFallback(t *testing.T) {
	envelope := envelopeWithText(t, "not json at all")

	record := Normalize(envelope, entity.ContentTypeBlogPost)

	assert.Equal(t, entity.ContentTypeBlogPost, record.ContentType)
	assert.Equal(t, "not json at all", record.MainContent)
	assert.Empty(t, record.MetaTitle)
}

func TestNormalize_EmptyEnvelope(t *testing.T) {
	record := Normalize(&llm.ReplyEnvelope{}, entity.ContentTypeEmail)

	assert.Equal(t, PlaceholderContent, record.MainContent)
	assert.Equal(t, entity.ContentTypeEmail, record.ContentType)
}

func TestNormalize_BlankText(t *testing.T) {
	envelope := envelopeWithText(t, "   \n\t  ")

	record := Normalize(envelope, entity.ContentTypeEmail)

	// 信封声称有文本但全是空白时仍然回退到占位内容
	assert.Equal(t, PlaceholderContent, record.MainContent)
}

func TestNormalize_SocialMediaPostPromotion(t *testing.T) {
	envelope := envelopeWithText(t, `{"socialMediaPost":"Check onze sale!","hashtags":["sale"]}`)

	record := Normalize(envelope, entity.ContentTypeSocialMedia)

	assert.Equal(t, "Check onze sale!", record.SocialMediaPost)
	assert.Equal(t, "Check onze sale!", record.MainContent)
	assert.Equal(t, []string{"sale"}, record.Hashtags)
}

func TestNormalize_PartialRecordKeepsRawAsMain(t *testing.T) {
	envelope := envelopeWithText(t, `{"metaTitle":"Alleen een titel"}`)

	record := Normalize(envelope, entity.ContentTypeBlogPost)

	assert.Equal(t, "Alleen een titel", record.MetaTitle)
	assert.Equal(t, `{"metaTitle":"Alleen een titel"}`, record.MainContent)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"无围栏", `{"a":1}`, `{"a":1}`},
		{"json 标签围栏", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"裸围栏", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"只有开围栏", "```json\n{\"a\":1}", `{"a":1}`},
		{"单行围栏", "```{\"a\":1}```", `{"a":1}`},
		{"带周围空白", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.input))
		})
	}
}
