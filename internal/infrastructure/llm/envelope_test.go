package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, raw string) *ReplyEnvelope {
	t.Helper()

	var envelope ReplyEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	return &envelope
}

func TestFirstText_PlainString(t *testing.T) {
	envelope := decodeEnvelope(t, `{"content": "direct antwoord"}`)

	text, ok := envelope.FirstText()
	require.True(t, ok)
	assert.Equal(t, "direct antwoord", text)
}

func TestFirstText_FragmentList(t *testing.T) {
	envelope := decodeEnvelope(t, `{"content": [
		{"type": "text", "text": "deel een "},
		{"type": "tool_use", "text": "genegeerd"},
		{"type": "text", "text": "deel twee"}
	]}`)

	text, ok := envelope.FirstText()
	require.True(t, ok)
	assert.Equal(t, "deel een deel twee", text)
}

func TestFirstText_DirectTextField(t *testing.T) {
	envelope := decodeEnvelope(t, `{"text": "top-level tekst"}`)

	text, ok := envelope.FirstText()
	require.True(t, ok)
	assert.Equal(t, "top-level tekst", text)
}

func TestFirstText_EmptyContentFallsBackToText(t *testing.T) {
	envelope := decodeEnvelope(t, `{"content": "", "text": "alternatief"}`)

	text, ok := envelope.FirstText()
	require.True(t, ok)
	assert.Equal(t, "alternatief", text)
}

func TestFirstText_NothingAvailable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"leeg object", `{}`},
		{"null content", `{"content": null}`},
		{"lege fragmentlijst", `{"content": []}`},
		{"alleen niet-tekst fragmenten", `{"content": [{"type": "tool_use", "text": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := decodeEnvelope(t, tt.raw)
			_, ok := envelope.FirstText()
			assert.False(t, ok)
		})
	}
}

func TestFirstText_NilEnvelope(t *testing.T) {
	var envelope *ReplyEnvelope
	_, ok := envelope.FirstText()
	assert.False(t, ok)
}

func TestReplyContent_UnrecognizedShape(t *testing.T) {
	// 无法识别的 content 形态不让整个解码失败
	envelope := decodeEnvelope(t, `{"content": {"unexpected": true}, "text": "reserve"}`)

	text, ok := envelope.FirstText()
	require.True(t, ok)
	assert.Equal(t, "reserve", text)
}
