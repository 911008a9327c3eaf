package cmd

import (
	"github.com/spf13/cobra"

	"github.com/angeloflores/folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create folio configuration and content with an interactive wizard",
	Long: `Runs an interactive wizard that writes a starter content.yml seeded
from the built-in page and a folio.yml pointing at it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
