package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// DRAFTPILOT_SERVER_PORT or DRAFTPILOT_LLM_GEMINI_API_KEY.
const envPrefix = "DRAFTPILOT"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory, applies defaults, and validates the
// result. Environment variables take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a malformed one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every known key with viper. Registration matters
// beyond the default values themselves: AutomaticEnv only resolves keys
// viper already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.url", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_initial_delay_ms", 1000)
	v.SetDefault("llm.retry_backoff_factor", 2.0)
	v.SetDefault("llm.timeout_base_ms", 30000)
	v.SetDefault("llm.timeout_per_block_ms", 10000)
	v.SetDefault("llm.timeout_max_ms", 90000)
	v.SetDefault("llm.max_prompt_tokens", 24000)
}
