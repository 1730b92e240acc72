package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve site content to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := content.NewRepository(opts.client(), opts.logger())
			tools := mcpserver.NewTools(repo, opts.config().GetJobsPerPage())
			return server.ServeStdio(mcpserver.NewServer(tools))
		},
	}
}
