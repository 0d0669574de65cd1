package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	Port     int    `envconfig:"APP_PORT" default:"8080"`
	Supabase SupabaseConfig
	JWT      JWTConfig
	Vapi     VapiConfig
	OpenAI   OpenAIConfig
	Workflow WorkflowConfig
}

// hosted database/auth service configuration
type SupabaseConfig struct {
	URL         string `envconfig:"SUPABASE_URL" required:"true"`
	Key         string `envconfig:"SUPABASE_KEY" required:"true"`
	RedirectURL string `envconfig:"MAGICLINK_REDIRECT_URL" default:"http://localhost:8080/candidate/dashboard"`
}

// JWT configuration for company sessions
type JWTConfig struct {
	Secret        string `envconfig:"JWT_SECRET_KEY" required:"true"`
	ExpiryMinutes int    `envconfig:"TOKEN_EXPIRY_TIME" default:"30"`
}

// voice-calling service configuration
type VapiConfig struct {
	APIKey        string        `envconfig:"VAPI_API_KEY" required:"true"`
	PhoneNumberID string        `envconfig:"VAPI_PHONE_NUMBER_ID" required:"true"`
	Timeout       time.Duration `envconfig:"VAPI_TIMEOUT" default:"30s"`
}

// LLM grading service configuration
type OpenAIConfig struct {
	APIKey string `envconfig:"OPENAI_API_KEY" required:"true"`
	Model  string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// defaults applied to every generated interview workflow
type WorkflowConfig struct {
	InterviewerName string `envconfig:"WORKFLOW_INTERVIEWER_NAME" default:"Alex"`
	VoiceID         string `envconfig:"WORKFLOW_VOICE_ID" default:"andrew"`
	ModelID         string `envconfig:"WORKFLOW_MODEL_ID" default:"gpt-4o"`
	TimeoutSeconds  int    `envconfig:"WORKFLOW_TIMEOUT_SECONDS" default:"45"`
	DebugDir        string `envconfig:"WORKFLOW_DEBUG_DIR"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.JWT.ExpiryMinutes < 1 {
		return fmt.Errorf("TOKEN_EXPIRY_TIME must be at least 1 minute")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET_KEY must be at least 32 characters")
	}
	if c.Vapi.Timeout <= 0 {
		return fmt.Errorf("VAPI_TIMEOUT must be positive")
	}
	if c.Workflow.TimeoutSeconds < 1 {
		return fmt.Errorf("WORKFLOW_TIMEOUT_SECONDS must be at least 1")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiryMinutes) * time.Minute
}
