package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the landing page to the output directory",
	Long:  `Renders the landing page and overwrites <output_dir>/<file_name> (dist/index.html by default), creating the directory if needed.`,
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := buildPage(cfg.OutputPath()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Generate Successful")
	return nil
}
