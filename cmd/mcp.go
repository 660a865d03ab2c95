package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/ffsite/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing template search, graph payloads and tutorials to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		src, err := newSource(cfg)
		if err != nil {
			return err
		}
		snap := loadSnapshot(cmd.Context(), cfg, src, logger, nil)
		if snap.Err != nil {
			// Tutorials stay available; template tools report the error.
			fmt.Fprintf(os.Stderr, "Warning: template catalog unavailable: %v\n", snap.Err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "ffsite MCP server started on stdio (source=%s, templates=%d)\n",
			src.Location(), len(snap.Groups()))

		srv := mcpserver.NewServer(snap, cfg.ToolName, cfg.PageSize)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
