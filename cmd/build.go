package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angeloflores/folio/internal/page"
	"github.com/angeloflores/folio/internal/progress"
	"github.com/angeloflores/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio as a static site",
	Long: `Writes index.html, style.css, script.js and matching image assets to
the output directory. The page resolves its theme in the browser before
first paint from localStorage, then prefers-color-scheme, then light.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 8080, "port for the local preview server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	renderer, err := page.NewRenderer()
	if err != nil {
		return err
	}

	generator := site.NewGenerator(site.Options{
		OutputDir:   outputDir,
		AssetsDir:   cfg.AssetsDir,
		Assets:      cfg.Assets,
		PrefersDark: cfg.Theme.PrefersDark,
	}, c, renderer, progress.NewReporter())

	n, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	fmt.Printf("Static site built: %s (%d files)\n", outputDir, n)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if err := site.Preview(outputDir, port, open, logger); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
