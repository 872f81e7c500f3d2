package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS", "LLM_PROVIDER", "OPENAI_API_KEY",
		"OPENAI_MODEL", "CHAT_MAX_TOKENS", "SEO_MAX_TOKENS", "LLM_TIMEOUT", "SUPABASE_URL",
		"SUPABASE_SERVICE_ROLE_KEY", "DATABASE_URL", "SLACK_WEBHOOK_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAIModel)
	assert.Equal(t, 150, cfg.AI.ChatMaxTokens)
	assert.Equal(t, 60, cfg.AI.SEOMaxTokens)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.Store.Enabled())
	assert.Equal(t, "contacts", cfg.Store.SupabaseTable)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.ch, https://www.example.ch,")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHAT_MAX_TOKENS", "200")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co/")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://example.ch", "https://www.example.ch"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.AI.Enabled())
	assert.Equal(t, 200, cfg.AI.ChatMaxTokens)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "https://project.supabase.co", cfg.Store.SupabaseURL)
	assert.True(t, cfg.Store.Enabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":            "80 80",
		"LOG_LEVEL":       "verbose",
		"LLM_PROVIDER":    "mistral",
		"CHAT_MAX_TOKENS": "-1",
		"LLM_TIMEOUT":     "soon",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	for _, value := range []string{"0s", "0", "-5s"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("LLM_TIMEOUT", value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must be positive")
		})
	}
}

func TestArkEnabledRequiresModel(t *testing.T) {
	cfg := AIConfig{Provider: ProviderArk, ArkAPIKey: "key"}
	assert.False(t, cfg.Enabled())

	cfg.ArkModel = "doubao-pro"
	assert.True(t, cfg.Enabled())

	cfg = AIConfig{Provider: ProviderArk, ArkModel: "doubao-pro", ArkAccessKey: "ak"}
	assert.False(t, cfg.Enabled())
}
