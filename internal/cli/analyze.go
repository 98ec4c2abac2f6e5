package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/analyzer"
	"resumelens/internal/catalog"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume against a target role",
	Long: `Analyze a resume against a target role using fast local scoring.
The resume can be a PDF, DOCX, or plain text file.

The analysis includes:
- Contact detail extraction (name, email, phone, LinkedIn, GitHub)
- Skills match against the role's required skills
- Section and format scoring
- ATS friendliness scoring
- Concrete improvement suggestions`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig   common.CommandConfig
	analyzeCategory string
	analyzeRole     string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeCategory, "category", "c", "", "Role category (e.g. \"Software Development\")")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target role (e.g. \"Backend Developer\")")
	_ = analyzeCmd.MarkFlagRequired("category")
	_ = analyzeCmd.MarkFlagRequired("role")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = analyzeCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.Categories(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = analyzeCmd.RegisterFlagCompletionFunc("role", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.RolesIn(analyzeCategory), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	role, err := catalog.Lookup(analyzeCategory, analyzeRole)
	if err != nil {
		return err
	}

	analysis := func(ctx context.Context, resumeText, jobDescription string) (types.AnalysisResult, *ai.TokenUsage, error) {
		return analyzer.Analyze(resumeText, role), nil, nil
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		"",
		analysis,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
