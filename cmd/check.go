package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and content files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadContent(cfg)
		if err != nil {
			return err
		}

		source := cfg.ContentFile
		if source == "" {
			source = "built-in"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config:  %s\n", cfgFile)
		fmt.Fprintf(out, "Content: %s (%s)\n", source, c.Profile.Name)
		for _, s := range c.Sections {
			fmt.Fprintf(out, "  #%-16s %s\n", s.ID, s.Label)
		}
		fmt.Fprintf(out, "%d projects, %d certificates\n", len(c.Projects), len(c.Certificates))
		fmt.Fprintln(out, "OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
