package config

import (
	"testing"
	"time"
)

func TestGetCritiqueConfigAppliesGlobalDefaults(t *testing.T) {
	cfg := &Config{
		AI: AIConfig{
			Provider:         "gemini",
			Model:            "gemini-2.0-flash",
			Timeout:          60 * time.Second,
			APIKey:           "global-key",
			MaxRetries:       3,
			Temperature:      0.7,
			UseSystemPrompts: true,
		},
	}

	op := cfg.GetCritiqueConfig()

	if op.Provider != "gemini" {
		t.Errorf("Expected provider gemini, got %s", op.Provider)
	}
	if op.Model != "gemini-2.0-flash" {
		t.Errorf("Expected global model fallback, got %s", op.Model)
	}
	if op.APIKey != "global-key" {
		t.Errorf("Expected global API key fallback, got %s", op.APIKey)
	}
	if op.Timeout == nil || *op.Timeout != 60*time.Second {
		t.Errorf("Expected global timeout fallback, got %v", op.Timeout)
	}
	if op.MaxRetries == nil || *op.MaxRetries != 3 {
		t.Errorf("Expected global max retries fallback, got %v", op.MaxRetries)
	}
	if op.Temperature == nil || *op.Temperature != 0.7 {
		t.Errorf("Expected global temperature fallback, got %v", op.Temperature)
	}
	if op.UseSystemPrompts == nil || !*op.UseSystemPrompts {
		t.Errorf("Expected global useSystemPrompts fallback, got %v", op.UseSystemPrompts)
	}
}

func TestGetCritiqueConfigOperationOverrides(t *testing.T) {
	opTimeout := 90 * time.Second
	opTemperature := float32(0.2)
	cfg := &Config{
		AI: AIConfig{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			Timeout:     60 * time.Second,
			APIKey:      "global-key",
			MaxRetries:  3,
			Temperature: 0.7,
			Critique: OperationAIConfig{
				Model:       "gemini-2.5-pro",
				APIKey:      "critique-key",
				Timeout:     &opTimeout,
				Temperature: &opTemperature,
			},
		},
	}

	op := cfg.GetCritiqueConfig()

	if op.Model != "gemini-2.5-pro" {
		t.Errorf("Expected operation model override, got %s", op.Model)
	}
	if op.APIKey != "critique-key" {
		t.Errorf("Expected operation API key override, got %s", op.APIKey)
	}
	if op.Timeout == nil || *op.Timeout != opTimeout {
		t.Errorf("Expected operation timeout override, got %v", op.Timeout)
	}
	if op.Temperature == nil || *op.Temperature != opTemperature {
		t.Errorf("Expected operation temperature override, got %v", op.Temperature)
	}
	if op.MaxRetries == nil || *op.MaxRetries != 3 {
		t.Errorf("Expected global max retries fallback, got %v", op.MaxRetries)
	}
}

func TestGetCritiqueConfigDoesNotMutate(t *testing.T) {
	cfg := &Config{
		AI: AIConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
			APIKey:   "global-key",
		},
	}

	_ = cfg.GetCritiqueConfig()

	if cfg.AI.Critique.APIKey != "" {
		t.Error("Expected critique config to remain untouched after defaults were applied")
	}
	if cfg.AI.Critique.Timeout != nil {
		t.Error("Expected critique timeout to remain unset on the stored config")
	}
}

func TestPromptConfigFallbackOrder(t *testing.T) {
	cfg := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				SystemPrompt:       "global system",
				UserPromptTemplate: "global user %s",
			},
			Critique: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompt: "critique system",
				},
			},
		},
	}

	op := cfg.GetCritiqueConfig()

	if op.CustomPrompts.SystemPrompt != "critique system" {
		t.Errorf("Expected operation system prompt to win, got %q", op.CustomPrompts.SystemPrompt)
	}
	if op.CustomPrompts.UserPromptTemplate != "global user %s" {
		t.Errorf("Expected global user prompt fallback, got %q", op.CustomPrompts.UserPromptTemplate)
	}
}
