package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the content tree for broken templates and documents",
	Long: `Loads every catalog and site document and reports what the rendered site
would silently skip: templates whose manifest or payloads fail to load,
missing or malformed site documents and, for local content, payload files
that no manifest references.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("allow-orphans", false, "do not fail on unreferenced payload files")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Failures are reported, not fatal, so every problem is listed.
	cfg.StrictCatalog = false
	logger := newLogger(cfg)

	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	snap := loadSnapshot(cmd.Context(), cfg, src, logger, nil)
	if snap.Err != nil {
		return fmt.Errorf("template catalog unavailable: %w", snap.Err)
	}

	problems := 0
	fmt.Printf("✓ %d template(s) loaded from %s\n", len(snap.Groups()), src.Location())
	for _, f := range snap.Catalog.Failures {
		problems++
		fmt.Printf("✗ %s\n", f)
	}
	for _, e := range snap.Site.Errors {
		fmt.Printf("! %s (section skipped)\n", e)
	}

	if dir, ok := src.(*content.DirSource); ok {
		orphans, err := catalog.Orphans(dir.FS(), layoutFor(cfg), snap.Catalog)
		if err != nil {
			return err
		}
		allow, _ := cmd.Flags().GetBool("allow-orphans")
		for _, o := range orphans {
			if !allow {
				problems++
			}
			fmt.Printf("! unreferenced payload %s\n", o)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println("✓ content is valid")
	return nil
}
