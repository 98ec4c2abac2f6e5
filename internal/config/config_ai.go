package config

import (
	"os"
	"time"
)

// AIConfig holds AI provider configuration with global defaults and
// per-operation overrides
type AIConfig struct {
	// Global defaults applied to operations that don't override them
	Provider         string        `mapstructure:"provider"`
	Model            string        `mapstructure:"model"`
	Timeout          time.Duration `mapstructure:"timeout"`
	APIKey           string        `mapstructure:"apiKey"`
	MaxRetries       int           `mapstructure:"maxRetries"`
	Temperature      float32       `mapstructure:"temperature"`
	UseSystemPrompts bool          `mapstructure:"useSystemPrompts"`
	CustomPrompts    PromptConfig  `mapstructure:"customPrompts"`

	// Per-operation configuration
	Critique OperationAIConfig `mapstructure:"critique"`
}

// OperationAIConfig holds AI configuration for a specific operation.
// Pointer fields distinguish "not set" from zero values so global
// defaults can fill the gaps.
type OperationAIConfig struct {
	Provider         string               `mapstructure:"provider"`
	Model            string               `mapstructure:"model"`
	Timeout          *time.Duration       `mapstructure:"timeout"`
	APIKey           string               `mapstructure:"apiKey"`
	MaxRetries       *int                 `mapstructure:"maxRetries"`
	Temperature      *float32             `mapstructure:"temperature"`
	UseSystemPrompts *bool                `mapstructure:"useSystemPrompts"`
	CustomPrompts    PromptConfig         `mapstructure:"customPrompts"`
	CircuitBreaker   CircuitBreakerConfig `mapstructure:"circuitBreaker"`

	// LoadedPrompts holds prompt content read from files at startup.
	// Populated by loadPromptsFromFiles, never from the config file itself.
	LoadedPrompts LoadedPrompts `mapstructure:"-"`
}

// PromptConfig holds custom prompt configuration for an AI operation.
// Inline values take precedence over file paths.
type PromptConfig struct {
	SystemPrompt           string `mapstructure:"systemPrompt"`
	SystemPromptFile       string `mapstructure:"systemPromptFile"`
	UserPromptTemplate     string `mapstructure:"userPromptTemplate"`
	UserPromptTemplateFile string `mapstructure:"userPromptTemplateFile"`
}

// LoadedPrompts holds prompt content loaded from files
type LoadedPrompts struct {
	SystemPrompt       string
	UserPromptTemplate string
}

// CircuitBreakerConfig holds circuit breaker configuration for AI operations
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxRequests      uint32        `mapstructure:"maxRequests"`      // Max requests allowed in half-open state
	Interval         time.Duration `mapstructure:"interval"`         // Statistical window for failure counting
	Timeout          time.Duration `mapstructure:"timeout"`          // Time to wait before trying half-open
	MinRequests      uint32        `mapstructure:"minRequests"`      // Min requests before tripping
	FailureThreshold float64       `mapstructure:"failureThreshold"` // Failure ratio to trip (0.0-1.0)
}

// applyAIFallbacks applies AI-related environment variable fallbacks
func (c *Config) applyAIFallbacks() {
	if c.AI.APIKey == "" {
		if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
			c.AI.APIKey = geminiKey
		}
	}
}

// applyOperationDefaults fills unset operation fields from the global AI config
func (c *Config) applyOperationDefaults(op *OperationAIConfig) *OperationAIConfig {
	result := *op

	if result.Provider == "" {
		result.Provider = c.AI.Provider
	}
	if result.Model == "" {
		result.Model = c.AI.Model
	}
	if result.APIKey == "" {
		result.APIKey = c.AI.APIKey
	}
	if result.Timeout == nil {
		timeout := c.AI.Timeout
		result.Timeout = &timeout
	}
	if result.MaxRetries == nil {
		maxRetries := c.AI.MaxRetries
		result.MaxRetries = &maxRetries
	}
	if result.Temperature == nil {
		temperature := c.AI.Temperature
		result.Temperature = &temperature
	}
	if result.UseSystemPrompts == nil {
		useSystemPrompts := c.AI.UseSystemPrompts
		result.UseSystemPrompts = &useSystemPrompts
	}

	if result.CustomPrompts.SystemPrompt == "" {
		result.CustomPrompts.SystemPrompt = c.AI.CustomPrompts.SystemPrompt
	}
	if result.CustomPrompts.SystemPromptFile == "" {
		result.CustomPrompts.SystemPromptFile = c.AI.CustomPrompts.SystemPromptFile
	}
	if result.CustomPrompts.UserPromptTemplate == "" {
		result.CustomPrompts.UserPromptTemplate = c.AI.CustomPrompts.UserPromptTemplate
	}
	if result.CustomPrompts.UserPromptTemplateFile == "" {
		result.CustomPrompts.UserPromptTemplateFile = c.AI.CustomPrompts.UserPromptTemplateFile
	}

	return &result
}

// GetCritiqueConfig returns the effective AI configuration for resume critique
func (c *Config) GetCritiqueConfig() *OperationAIConfig {
	return c.applyOperationDefaults(&c.AI.Critique)
}
