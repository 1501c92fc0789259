package cmd

import (
	"github.com/spf13/cobra"
	"github.com/taroutcy/claudemd-landing/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with an interactive wizard",
	Long:  `Asks for the output directory, page file name and log level, and saves them to the config file (.landing.yml unless --config is set).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
