package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ffsite/internal/clipboard"
	"github.com/ziadkadry99/ffsite/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the template library interactively",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	cat, err := loadCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	if n := len(cat.Failures); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d template(s) skipped\n", n)
	}

	// Logging would draw over the alternate screen.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := tui.New(cat.Groups, tui.Options{
		ToolName:       cfg.ToolName,
		PageSize:       cfg.PageSize,
		SearchDebounce: cfg.SearchDebounce,
		ConfirmFor:     cfg.CopyConfirm,
		Clipboard:      clipboard.NewCopier(os.Stdout, quiet),
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
