package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles reads prompt content from the configured file paths
// into LoadedPrompts. Inline prompt values are left alone; the AI layer
// resolves precedence (file over inline over default) at call time.
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Loading custom prompts from files")

	prompts := []struct {
		operation string
		kind      string
		path      string
		target    *string
	}{
		{"critique", "system", firstNonEmpty(c.AI.Critique.CustomPrompts.SystemPromptFile, c.AI.CustomPrompts.SystemPromptFile), &c.AI.Critique.LoadedPrompts.SystemPrompt},
		{"critique", "user", firstNonEmpty(c.AI.Critique.CustomPrompts.UserPromptTemplateFile, c.AI.CustomPrompts.UserPromptTemplateFile), &c.AI.Critique.LoadedPrompts.UserPromptTemplate},
	}

	for _, p := range prompts {
		if p.path == "" {
			continue
		}
		content, err := loadPromptFromFile(p.path)
		if err != nil {
			return fmt.Errorf("failed to load %s %s prompt: %w", p.operation, p.kind, err)
		}
		*p.target = content
		log.Printf("[CONFIG] Loaded %s %s prompt from %s (%d bytes)", p.operation, p.kind, p.path, len(content))
	}

	return nil
}

// loadPromptFromFile loads a single prompt file and returns its trimmed content
func loadPromptFromFile(filePath string) (string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", filePath, err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("prompt file does not exist: %s", absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file %s: %w", absPath, err)
	}

	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return "", fmt.Errorf("prompt file is empty: %s", absPath)
	}

	return trimmed, nil
}

// validatePromptFiles checks that all configured prompt files exist and are
// readable before any loading takes place
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	paths := []struct {
		name string
		path string
	}{
		{"global system prompt", c.AI.CustomPrompts.SystemPromptFile},
		{"global user prompt template", c.AI.CustomPrompts.UserPromptTemplateFile},
		{"critique system prompt", c.AI.Critique.CustomPrompts.SystemPromptFile},
		{"critique user prompt template", c.AI.Critique.CustomPrompts.UserPromptTemplateFile},
	}

	for _, p := range paths {
		if p.path == "" {
			continue
		}
		if err := validatePromptFile(p.path); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", p.name, err))
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation errors: %s", strings.Join(validationErrors, "; "))
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// validatePromptFile checks that a prompt file exists and is a readable regular file
func validatePromptFile(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", absPath)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", absPath)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return fmt.Errorf("file is not readable: %w", err)
	}
	file.Close()

	return nil
}
