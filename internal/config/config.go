package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all HTTP-server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the preference-store database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains the settings for validating add-in session tokens.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains the generation-service settings. The API key is
// validated here so an empty credential is rejected at startup, not at the
// first request.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// Retry loop parameters.
	MaxRetries          int     `mapstructure:"max_retries"            validate:"gte=0"`
	RetryInitialDelayMs int     `mapstructure:"retry_initial_delay_ms" validate:"gt=0"`
	RetryBackoffFactor  float64 `mapstructure:"retry_backoff_factor"   validate:"gte=1"`

	// Timeout policy parameters, milliseconds.
	TimeoutBaseMs     int `mapstructure:"timeout_base_ms"      validate:"gt=0"`
	TimeoutPerBlockMs int `mapstructure:"timeout_per_block_ms" validate:"gt=0"`
	TimeoutMaxMs      int `mapstructure:"timeout_max_ms"       validate:"gt=0"`

	// MaxPromptTokens bounds prompt size before dispatch; longer inputs
	// are truncated at a sentence boundary.
	MaxPromptTokens int `mapstructure:"max_prompt_tokens" validate:"gt=0"`
}
