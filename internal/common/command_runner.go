package common

import (
	"context"
	"fmt"
	"os"

	"resumelens/internal/ai"
	"resumelens/internal/errors"
)

// AnalysisFunc runs an analysis over extracted resume text and an optional
// job description, returning the result and token usage (nil for local
// analyses that never call a model).
type AnalysisFunc[Output any] func(ctx context.Context, resumeText, jobDescription string) (Output, *ai.TokenUsage, error)

// RunAnalysisCommand encapsulates the shared flow of the analysis commands:
// read the resume document, read the optional job description, run the
// analysis, report token usage, and write formatted output.
func RunAnalysisCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	resumeFile string,
	jobDescriptionFile string,
	analysis AnalysisFunc[Output],
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	resumeText, err := fileProcessor.ReadResumeText(resumeFile)
	if err != nil {
		return err
	}

	jobDescription := ""
	if jobDescriptionFile != "" {
		contents, err := fileProcessor.ValidateAndReadFiles(jobDescriptionFile)
		if err != nil {
			return err
		}
		jobDescription = contents[0]
	}

	if logger != nil {
		logger.Info("Starting resume analysis",
			"resume_file", resumeFile,
			"resume_chars", len(resumeText),
			"job_chars", len(jobDescription),
			"output_format", cmdConfig.OutputFormat)
	}

	result, tokenUsage, err := analysis(ctx, resumeText, jobDescription)
	if err != nil {
		return err
	}

	if tokenUsage != nil {
		if logger != nil {
			logger.Info("AI token usage",
				"input_tokens", tokenUsage.InputTokens,
				"output_tokens", tokenUsage.OutputTokens,
				"total_tokens", tokenUsage.TotalTokens)
		} else {
			fmt.Fprintf(os.Stderr, "AI token usage: input=%d, output=%d, total=%d\n",
				tokenUsage.InputTokens, tokenUsage.OutputTokens, tokenUsage.TotalTokens)
		}
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
