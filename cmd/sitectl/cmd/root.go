package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nfrund/sitefront/cmd/sitectl/internal/output"
	"github.com/nfrund/sitefront/internal/config"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/internal/logging"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	endpoint string
	format   string
	logLevel string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sitectl",
		Short: "Sitefront command-line tools",
		Long: `sitectl talks to the WordPress GraphQL backend the site is built on.

Available commands:
  query     Run one named query and print the raw response
  check     Run every query and report failures
  jobs      List job postings
  export    Render the site into static files
  mcp       Serve site content to MCP clients over stdio

Use "sitectl [command] --help" for more information about a command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !output.ValidFormat(opts.format) {
				return fmt.Errorf("unknown format %q (want %q or %q)", opts.format, output.FormatTable, output.FormatJSON)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "GraphQL endpoint (defaults to the configured backend)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", output.FormatTable, "Output format: table or json")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newQueryCmd(opts),
		newCheckCmd(opts),
		newJobsCmd(opts),
		newExportCmd(opts),
		newMCPCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// config loads the environment and applies --endpoint.
func (o *options) config() *config.Config {
	cfg := config.New()
	if o.endpoint != "" {
		cfg.GraphQLEndpoint = o.endpoint
	}
	return cfg
}

// logger writes to stderr so stdout stays parseable.
func (o *options) logger() *slog.Logger {
	return logging.NewWithWriter(os.Stderr, "text", o.logLevel)
}

func (o *options) client() *graphql.Client {
	return graphql.NewClient(o.config().GetGraphQLEndpoint(), graphql.WithLogger(o.logger()))
}
