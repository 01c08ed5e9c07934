package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LoveSonia specifics
	Telegram      TelegramConfig
	Intent        IntentConfig
	Google        GoogleConfig
	Transcription TranscriptionConfig
	Realtime      RealtimeConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	WebhookSecret   string
	WebAppURL       string
	DonateURL       string
	RateLimitPerMin int
}

// IntentConfig tunes the parse -> preview -> confirm flow.
type IntentConfig struct {
	DefaultTimeZone string
	TrustRulesAbove float64
	PreviewTTL      time.Duration
	PreviewCapacity int
}

type GoogleConfig struct {
	CredentialsPath string
	CalendarID      string
	TaskListID      string
}

// TranscriptionConfig configures the speech-to-text endpoint used for voice notes.
type TranscriptionConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Language string
}

type RealtimeConfig struct {
	HeartbeatInterval time.Duration
	BufferSize        int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper after pulling a local .env into the
// process environment.
// Config file name: config.yaml — searched in ./config, ., /etc/lovesonia/
func Load() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/lovesonia/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	cfg.Telegram.WebAppURL = viper.GetString("telegram.web_app_url")
	cfg.Telegram.DonateURL = viper.GetString("telegram.donate_url")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if webAppURL := viper.GetString("webapp_url"); webAppURL != "" {
		cfg.Telegram.WebAppURL = webAppURL
	}

	// Intent flow
	cfg.Intent.DefaultTimeZone = viper.GetString("intent.default_time_zone")
	cfg.Intent.TrustRulesAbove = viper.GetFloat64("intent.trust_rules_above")
	cfg.Intent.PreviewTTL = viper.GetDuration("intent.preview_ttl")
	cfg.Intent.PreviewCapacity = viper.GetInt("intent.preview_capacity")

	// Google Calendar + Tasks
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.TaskListID = viper.GetString("google.task_list_id")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}

	// Speech to text
	cfg.Transcription.APIKey = expandEnvVar(viper.GetString("transcription.api_key"))
	cfg.Transcription.BaseURL = viper.GetString("transcription.base_url")
	cfg.Transcription.Model = viper.GetString("transcription.model")
	cfg.Transcription.Language = viper.GetString("transcription.language")
	if key := viper.GetString("aitunnel_api_key"); key != "" && cfg.Transcription.APIKey == "" {
		cfg.Transcription.APIKey = key
	}

	cfg.Realtime.HeartbeatInterval = viper.GetDuration("realtime.heartbeat_interval")
	cfg.Realtime.BufferSize = viper.GetInt("realtime.buffer_size")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The classifier is optional: with no providers the rule-based parser runs alone.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("telegram.web_app_url", "https://lovesonia.ru/tg")
	viper.SetDefault("telegram.rate_limit_per_min", 30)

	viper.SetDefault("intent.default_time_zone", "Europe/Moscow")
	viper.SetDefault("intent.trust_rules_above", 0.9)
	viper.SetDefault("intent.preview_ttl", "15m")
	viper.SetDefault("intent.preview_capacity", 1024)

	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.task_list_id", "@default")

	viper.SetDefault("transcription.base_url", "https://api.aitunnel.ru/v1")
	viper.SetDefault("transcription.model", "whisper-1")
	viper.SetDefault("transcription.language", "ru")

	viper.SetDefault("realtime.heartbeat_interval", "25s")
	viper.SetDefault("realtime.buffer_size", 16)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.max_total_timeout", "20s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
