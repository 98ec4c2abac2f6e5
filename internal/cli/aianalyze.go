package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/catalog"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var aiAnalyzeCmd = &cobra.Command{
	Use:   "ai-analyze [resume-file] [job-description-file]",
	Short: "Analyze a resume with an AI critique",
	Long: `Analyze a resume against a target role and ask an AI model for a
deeper critique. The job description file is optional; when provided, the
critique takes it into account.

The AI review adds strengths, weaknesses, and a model-assigned resume score
on top of the standard analysis. If the model is unavailable, the standard
analysis is returned unchanged.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if aiAnalyzeConfig.OutputFormat == "" {
			aiAnalyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(aiAnalyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAIAnalyze,
}

var (
	aiAnalyzeConfig   common.CommandConfig
	aiAnalyzeCategory string
	aiAnalyzeRole     string
)

func init() {
	aiAnalyzeCmd.Flags().StringVarP(&aiAnalyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	aiAnalyzeCmd.Flags().StringVar(&aiAnalyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	aiAnalyzeCmd.Flags().StringVarP(&aiAnalyzeCategory, "category", "c", "", "Role category (e.g. \"Data Science\")")
	aiAnalyzeCmd.Flags().StringVarP(&aiAnalyzeRole, "role", "r", "", "Target role (e.g. \"Data Scientist\")")
	_ = aiAnalyzeCmd.MarkFlagRequired("category")
	_ = aiAnalyzeCmd.MarkFlagRequired("role")

	_ = aiAnalyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = aiAnalyzeCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.Categories(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = aiAnalyzeCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.RolesIn(aiAnalyzeCategory), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAIAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	role, err := catalog.Lookup(aiAnalyzeCategory, aiAnalyzeRole)
	if err != nil {
		return err
	}

	// Create AI service for the critique operation
	aiService, err := ai.NewService(cfg.GetCritiqueConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.Warn("Failed to close AI service", "error", err)
		}
	}()

	jobDescriptionFile := ""
	if len(args) == 2 {
		jobDescriptionFile = args[1]
	}

	analysis := func(ctx context.Context, resumeText, jobDescription string) (types.AIAnalysisResult, *ai.TokenUsage, error) {
		result, usage := aiService.AnalyzeResume(ctx, resumeText, role, jobDescription)
		return result, usage, nil
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		aiAnalyzeConfig,
		args[0],
		jobDescriptionFile,
		analysis,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("AI resume analysis completed successfully")
	return nil
}
