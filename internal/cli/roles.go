package cli

import (
	"fmt"

	"resumelens/internal/catalog"
	"resumelens/internal/common"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List available role categories and their required skills",
	Long: `List the role catalog: every category, the roles within it, and the
skills each role expects on a resume.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if rolesConfig.OutputFormat == "" {
			rolesConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(rolesConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRoles,
}

var rolesConfig common.CommandConfig

func init() {
	rolesCmd.Flags().StringVarP(&rolesConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rolesCmd.Flags().StringVar(&rolesConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runRoles(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(catalog.All(), rolesConfig); err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}
	return nil
}
