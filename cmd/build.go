package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ffsite/internal/progress"
	"github.com/ziadkadry99/ffsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the static website",
	Long: `Loads the template catalog and the site documents and writes a
self-contained static site: home page, paginated graph library, tutorials,
a catalog.json for client-side search and a build.json manifest.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "override output directory")
	buildCmd.Flags().String("static", "", "directory of static assets to copy (images, icons)")
	buildCmd.Flags().Bool("strict", false, "fail the build when any template fails to load")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if static, _ := cmd.Flags().GetString("static"); static != "" {
		cfg.StaticDir = static
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		cfg.StrictCatalog = true
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	reporter := progress.NewReporter("Loading templates")
	snap := loadSnapshot(ctx, cfg, src, logger, reporter)

	generator := site.NewSiteGenerator(cfg.OutputDir, cfg.StaticDir, cfg.ToolName, cfg.PageSize, logger)
	info, err := generator.Generate(snap)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages, %d templates, %d tutorials)\n",
		cfg.OutputDir, info.Pages, info.Templates, info.Tutorials)
	if len(info.Dropped) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d template(s) skipped: %v\n", len(info.Dropped), info.Dropped)
	}
	for _, e := range snap.Site.Errors {
		fmt.Fprintf(os.Stderr, "Warning: %s unavailable, section skipped\n", e.Name)
	}

	// The site still renders without templates, but the build failed.
	if snap.Err != nil {
		return fmt.Errorf("template catalog unavailable: %w", snap.Err)
	}
	return nil
}
