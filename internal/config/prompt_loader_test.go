package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPromptsFromFiles(t *testing.T) {
	tempDir := t.TempDir()

	systemPromptContent := "Test system prompt for resume critique"
	userPromptContent := "Test user prompt template: %s and %s"

	systemPromptFile := filepath.Join(tempDir, "system.critique.md")
	userPromptFile := filepath.Join(tempDir, "user.critique.md")

	if err := os.WriteFile(systemPromptFile, []byte(systemPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test system prompt file: %v", err)
	}
	if err := os.WriteFile(userPromptFile, []byte(userPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test user prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Critique: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPromptFile:       systemPromptFile,
					UserPromptTemplateFile: userPromptFile,
				},
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	if config.AI.Critique.LoadedPrompts.SystemPrompt != systemPromptContent {
		t.Errorf("Expected loaded system prompt %q, got %q",
			systemPromptContent, config.AI.Critique.LoadedPrompts.SystemPrompt)
	}
	if config.AI.Critique.LoadedPrompts.UserPromptTemplate != userPromptContent {
		t.Errorf("Expected loaded user prompt template %q, got %q",
			userPromptContent, config.AI.Critique.LoadedPrompts.UserPromptTemplate)
	}

	// File paths are preserved after loading
	if config.AI.Critique.CustomPrompts.SystemPromptFile != systemPromptFile {
		t.Error("Expected system prompt file path to be preserved")
	}
	if config.AI.Critique.CustomPrompts.UserPromptTemplateFile != userPromptFile {
		t.Error("Expected user prompt template file path to be preserved")
	}
}

func TestLoadPromptsFromFilesGlobalFallback(t *testing.T) {
	tempDir := t.TempDir()

	content := "Global system prompt applied to critique"
	globalFile := filepath.Join(tempDir, "system.md")
	if err := os.WriteFile(globalFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				SystemPromptFile: globalFile,
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	if config.AI.Critique.LoadedPrompts.SystemPrompt != content {
		t.Errorf("Expected global prompt file to load into critique prompts, got %q",
			config.AI.Critique.LoadedPrompts.SystemPrompt)
	}
}

func TestValidatePromptFiles(t *testing.T) {
	tempDir := t.TempDir()

	validFile := filepath.Join(tempDir, "valid.md")
	if err := os.WriteFile(validFile, []byte("Valid content"), 0600); err != nil {
		t.Fatalf("Failed to create valid test file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Critique: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPromptFile: validFile,
				},
			},
		},
	}

	if err := config.validatePromptFiles(); err != nil {
		t.Errorf("Expected validation to pass for valid file, got error: %v", err)
	}

	config.AI.Critique.CustomPrompts.SystemPromptFile = filepath.Join(tempDir, "nonexistent.md")
	if err := config.validatePromptFiles(); err == nil {
		t.Error("Expected validation to fail for non-existent file")
	}

	config.AI.Critique.CustomPrompts.SystemPromptFile = tempDir
	if err := config.validatePromptFiles(); err == nil {
		t.Error("Expected validation to fail for a directory path")
	}
}

func TestLoadPromptFromFile(t *testing.T) {
	tempDir := t.TempDir()

	content := "Test prompt content"
	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	loadedContent, err := loadPromptFromFile(testFile)
	if err != nil {
		t.Fatalf("Failed to load prompt from file: %v", err)
	}
	if loadedContent != content {
		t.Errorf("Expected content %q, got %q", content, loadedContent)
	}

	whitespaceFile := filepath.Join(tempDir, "padded.md")
	if err := os.WriteFile(whitespaceFile, []byte("\n  padded prompt  \n\n"), 0600); err != nil {
		t.Fatalf("Failed to create padded test file: %v", err)
	}
	loadedContent, err = loadPromptFromFile(whitespaceFile)
	if err != nil {
		t.Fatalf("Failed to load padded prompt file: %v", err)
	}
	if loadedContent != "padded prompt" {
		t.Errorf("Expected trimmed content, got %q", loadedContent)
	}

	emptyFile := filepath.Join(tempDir, "empty.md")
	if err := os.WriteFile(emptyFile, []byte(""), 0600); err != nil {
		t.Fatalf("Failed to create empty test file: %v", err)
	}
	if _, err := loadPromptFromFile(emptyFile); err == nil {
		t.Error("Expected error for empty file")
	}

	if _, err := loadPromptFromFile(filepath.Join(tempDir, "nonexistent.md")); err == nil {
		t.Error("Expected error for non-existent file")
	}
}
