package cmd

import (
	"github.com/spf13/cobra"

	"github.com/angeloflores/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio page with flash-free light and dark themes",
	Long: `folio renders a single-page portfolio: a profile sidebar with contact
links and section navigation, and a main column with an about blurb,
projects and certificates. Serve it with per-visitor theme resolution
before first paint, or build it into a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
