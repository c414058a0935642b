package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Redis RedisConfig

	// Conversation engine
	Chat      ChatConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Seeder
	Seed SeedConfig
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

// RedisConfig points at a Redis or Valkey server.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// ChatConfig tunes the conversation engine.
type ChatConfig struct {
	MaxToolRounds int
	ModelTimeout  time.Duration
	ToolTimeout   time.Duration
	HistoryWindow int
	HistoryTTL    time.Duration
	SessionLock   string // local, redis
	LockTTL       time.Duration
	Timezone      string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
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

// SeedConfig points the seeder at its input files.
type SeedConfig struct {
	AccountsFile     string
	TransactionsFile string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	if err := validateChatConfig(&cfg.Chat); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithoutLLM loads configuration for tools that never talk to a model (the seeder).
func LoadWithoutLLM() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	// Redis / Valkey
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Timeout = viper.GetDuration("redis.timeout")
	if redisURL := viper.GetString("redis_addr"); redisURL != "" {
		cfg.Redis.Addr = redisURL
	}

	// Chat
	cfg.Chat.MaxToolRounds = viper.GetInt("chat.max_tool_rounds")
	cfg.Chat.ModelTimeout = viper.GetDuration("chat.model_timeout")
	cfg.Chat.ToolTimeout = viper.GetDuration("chat.tool_timeout")
	cfg.Chat.HistoryWindow = viper.GetInt("chat.history_window")
	cfg.Chat.HistoryTTL = viper.GetDuration("chat.history_ttl")
	cfg.Chat.SessionLock = viper.GetString("chat.session_lock")
	cfg.Chat.LockTTL = viper.GetDuration("chat.lock_ttl")
	cfg.Chat.Timezone = viper.GetString("chat.timezone")

	// Rate limit
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

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

	// A bare GEMINI_API_KEY is enough to run without a config file.
	if len(cfg.LLM.Providers) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    "gemini-2.0-flash",
			})
		}
	}

	// Seeder
	cfg.Seed.AccountsFile = viper.GetString("seed.accounts_file")
	cfg.Seed.TransactionsFile = viper.GetString("seed.transactions_file")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.timeout", "5s")

	viper.SetDefault("chat.max_tool_rounds", 5)
	viper.SetDefault("chat.model_timeout", "30s")
	viper.SetDefault("chat.tool_timeout", "10s")
	viper.SetDefault("chat.history_window", 20)
	viper.SetDefault("chat.history_ttl", "1h")
	viper.SetDefault("chat.session_lock", "local")
	viper.SetDefault("chat.lock_ttl", "2m")
	viper.SetDefault("chat.timezone", "UTC")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // entire fallback chain

	viper.SetDefault("seed.accounts_file", "accountsList.json")
	viper.SetDefault("seed.transactions_file", "transactionHistory.csv")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml or set GEMINI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// validateChatConfig checks that one full run fits in the history window:
// a user turn, a call and a result turn per tool round, and the answer.
func validateChatConfig(cfg *ChatConfig) error {
	if cfg.MaxToolRounds <= 0 {
		return fmt.Errorf("chat.max_tool_rounds must be positive")
	}
	if minWindow := 2*cfg.MaxToolRounds + 2; cfg.HistoryWindow < minWindow {
		return fmt.Errorf("chat.history_window %d is too small for %d tool rounds (need at least %d)",
			cfg.HistoryWindow, cfg.MaxToolRounds, minWindow)
	}
	if cfg.SessionLock == "redis" && cfg.LockTTL <= 0 {
		return fmt.Errorf("chat.lock_ttl must be positive with the redis session lock")
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
