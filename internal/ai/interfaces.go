package ai

import (
	"context"

	"resumelens/internal/types"
)

// CritiqueInput carries everything the model needs to review a resume.
type CritiqueInput struct {
	ResumeText     string
	Role           types.RoleDefinition
	JobDescription string // optional, included in the prompt when set
}

// Provider is the interface AI backends implement. All methods return
// token usage information - callers can ignore it if not needed.
type Provider interface {
	Critique(ctx context.Context, input CritiqueInput) (string, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}
