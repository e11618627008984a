package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("COPYTOOL_TEST_VAR", "gezet")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"环境变量已设置", "${COPYTOOL_TEST_VAR}", "gezet"},
		{"已设置时忽略默认值", "${COPYTOOL_TEST_VAR:fallback}", "gezet"},
		{"未设置取默认值", "${COPYTOOL_ONTBREEKT:fallback}", "fallback"},
		{"未设置且无默认值保持原样", "${COPYTOOL_ONTBREEKT}", "${COPYTOOL_ONTBREEKT}"},
		{"空默认值", "${COPYTOOL_ONTBREEKT:}", ""},
		{"嵌入文本中", "host=${COPYTOOL_TEST_VAR} port=5432", "host=gezet port=5432"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnv(tt.input))
		})
	}
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "copytool-ai-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.HTTP.Port)
	assert.Equal(t, "anthropic", cfg.LLM.DefaultProvider)
	assert.Equal(t, "https://api.anthropic.com", cfg.LLM.Providers["anthropic"].BaseURL)
	assert.Equal(t, "2023-06-01", cfg.LLM.Providers["anthropic"].APIVersion)
	assert.Equal(t, 4000, cfg.LLM.Providers["anthropic"].MaxTokens)
	assert.Equal(t, "dutch", cfg.Generation.DefaultLanguage)
	assert.Equal(t, 2000, cfg.Generation.AnalysisMaxTokens)
	assert.Equal(t, "https://www.googleapis.com/customsearch/v1", cfg.Search.Google.Endpoint)
	assert.Equal(t, 10, cfg.Search.Google.NumResults)
	assert.Equal(t, 20, cfg.Security.RateLimit.RequestsPerSecond)
}
