package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/teachassist/internal/mcp"
	"github.com/abhisek/teachassist/internal/tools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the tool catalog as MCP prompts over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol; logs stay on stderr.
		logger, err := newLogger(cmd, "warn")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		registry, err := tools.NewRegistry()
		if err != nil {
			return err
		}
		srv := mcp.New(registry, logger, version)
		return srv.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
