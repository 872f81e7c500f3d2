package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderArk    = "ark"
)

// Config aggregates every setting of the service.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	AI     AIConfig
	Store  StoreConfig
	Notify NotifyConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Log:    logCfg,
		AI:     ai,
		Store:  loadStoreConfig(),
		Notify: NotifyConfig{SlackWebhookURL: strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL"))},
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// loadServerConfig resolves the listen address and CORS origins.
func loadServerConfig() (ServerConfig, error) {
	origins := getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"})

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// accept ":8080" or "127.0.0.1:8080" as-is
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() (LogConfig, error) {
	level := strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q", level)
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "console" {
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value %q", format)
	}

	return LogConfig{Level: level, Format: format}, nil
}

// AIConfig describes the language model provider.
type AIConfig struct {
	Provider string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	ArkAPIKey    string
	ArkAccessKey string
	ArkSecretKey string
	ArkModel     string
	ArkBaseURL   string
	ArkRegion    string

	ChatMaxTokens int
	SEOMaxTokens  int
	Timeout       time.Duration
}

// Enabled reports whether the selected provider has the credentials it needs.
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case ProviderArk:
		return c.ArkModel != "" && (c.ArkAPIKey != "" || (c.ArkAccessKey != "" && c.ArkSecretKey != ""))
	default:
		return c.OpenAIAPIKey != ""
	}
}

// NewChatModel builds an Ark chat model from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if c.Provider != ProviderArk || !c.Enabled() {
		return nil, fmt.Errorf("ark credentials or model missing: set ARK_MODEL and ARK_API_KEY or ARK_ACCESS_KEY/ARK_SECRET_KEY")
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:   c.ArkBaseURL,
		Region:    c.ArkRegion,
		APIKey:    c.ArkAPIKey,
		AccessKey: c.ArkAccessKey,
		SecretKey: c.ArkSecretKey,
		Model:     c.ArkModel,
	}

	chatModel, err := ark.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return chatModel, nil
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderOpenAI))
	if provider != ProviderOpenAI && provider != ProviderArk {
		return AIConfig{}, fmt.Errorf("invalid LLM_PROVIDER value %q", provider)
	}

	chatMaxTokens, err := parseIntEnv("CHAT_MAX_TOKENS", 150)
	if err != nil {
		return AIConfig{}, err
	}

	seoMaxTokens, err := parseIntEnv("SEO_MAX_TOKENS", 60)
	if err != nil {
		return AIConfig{}, err
	}

	timeout, err := parseDurationEnv("LLM_TIMEOUT", 30*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		Provider:      provider,
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		ArkAPIKey:     strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkAccessKey:  strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		ArkSecretKey:  strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		ArkModel:      strings.TrimSpace(os.Getenv("ARK_MODEL")),
		ArkBaseURL:    getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		ArkRegion:     getEnvOrDefault("ARK_REGION", "cn-beijing"),
		ChatMaxTokens: chatMaxTokens,
		SEOMaxTokens:  seoMaxTokens,
		Timeout:       timeout,
	}, nil
}

// StoreConfig points at the contact datastore. Supabase wins when both are set.
type StoreConfig struct {
	SupabaseURL   string
	SupabaseKey   string
	SupabaseTable string
	DatabaseURL   string
}

// Enabled reports whether any contact backend is configured.
func (c StoreConfig) Enabled() bool {
	return (c.SupabaseURL != "" && c.SupabaseKey != "") || c.DatabaseURL != ""
}

func loadStoreConfig() StoreConfig {
	return StoreConfig{
		SupabaseURL:   strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/"),
		SupabaseKey:   strings.TrimSpace(os.Getenv("SUPABASE_SERVICE_ROLE_KEY")),
		SupabaseTable: getEnvOrDefault("SUPABASE_CONTACTS_TABLE", "contacts"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}
}

// NotifyConfig holds the chat webhook.
type NotifyConfig struct {
	SlackWebhookURL string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}
