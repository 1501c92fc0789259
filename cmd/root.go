package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taroutcy/claudemd-landing/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "Build the ClaudeMD Viewer landing page",
	Long: `landing renders the ClaudeMD Viewer landing page, a single self-contained
HTML file with embedded styles and an English/Japanese toggle, and writes it
to dist/index.html. Running it without a subcommand is the same as
"landing generate".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
