package ai

import (
	"context"
	"fmt"

	"resumelens/internal/analyzer"
	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Service runs AI-augmented resume analysis on top of the standard
// pipeline.
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

// NewService creates a new AI service instance
func NewService(cfg *config.OperationAIConfig, logger *errors.Logger) (*Service, error) {
	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	var provider Provider
	var err error
	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAICompletion,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// AnalyzeResume runs the standard pipeline and augments it with model
// feedback. When the model call fails the standard result is returned
// unchanged with AIEnabled false; callers never see the AI error.
func (s *Service) AnalyzeResume(ctx context.Context, text string, role types.RoleDefinition, jobDescription string) (types.AIAnalysisResult, *TokenUsage) {
	standard := analyzer.Analyze(text, role)

	input := CritiqueInput{
		ResumeText:     text,
		Role:           role,
		JobDescription: jobDescription,
	}

	callCtx := ctx
	if s.config.Timeout != nil && *s.config.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, *s.config.Timeout)
		defer cancel()
	}

	feedback, tokenUsage, err := s.Provider.Critique(callCtx, input)
	if err != nil {
		s.logger.LogError(err, "AI critique failed, falling back to standard analysis",
			"role", role.Role,
			"category", role.Category)
		return types.AIAnalysisResult{
			AnalysisResult: standard,
			AIEnabled:      false,
		}, nil
	}

	critique := ParseCritique(feedback)
	if critique.Score >= 0 {
		standard.ResumeScore = critique.Score
	}

	s.logger.Info("AI critique completed",
		"role", role.Role,
		"score_parsed", critique.Score >= 0,
		"strengths", len(critique.Strengths),
		"weaknesses", len(critique.Weaknesses))

	return types.AIAnalysisResult{
		AnalysisResult: standard,
		AIEnabled:      true,
		ModelUsed:      s.config.Model,
		AI:             &critique,
	}, tokenUsage
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

// Close releases provider resources
func (s *Service) Close() error {
	return s.Provider.Close()
}
