package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/clipboard"
)

var copyCmd = &cobra.Command{
	Use:   "copy <template-id>",
	Short: "Copy a template's graph JSON to the clipboard",
	Long: `Copies the raw graph JSON of one template version to the system clipboard.
When no system clipboard is available the payload is sent through the
terminal (OSC 52), which works over SSH and inside tmux.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().String("version", "", "tool version (defaults to the template's first version)")
	copyCmd.Flags().Bool("stdout", false, "print the payload instead of copying it")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cat, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	g, ok := cat.Find(args[0])
	if !ok {
		return fmt.Errorf("template %q not found; run `ffsite search` to list templates", args[0])
	}
	v := g.DefaultVersion()
	if name, _ := cmd.Flags().GetString("version"); name != "" {
		if v, ok = g.Version(name); !ok {
			return fmt.Errorf("template %q has no version %q", g.ID, name)
		}
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		return writePayload(os.Stdout, v)
	}

	if err := clipboard.NewCopier(os.Stderr, logger).Copy(v.GraphData); err != nil {
		return err
	}
	fmt.Printf("✓ Copied! %s (%s, %s)\n", g.Title,
		catalog.VersionLabel(cfg.ToolName, v.Version), humanize.Bytes(uint64(len(v.GraphData))))
	return nil
}

// writePayload writes the graph JSON exactly as stored, without a
// trailing newline.
func writePayload(w io.Writer, v catalog.Version) error {
	_, err := io.WriteString(w, v.GraphData)
	return err
}
