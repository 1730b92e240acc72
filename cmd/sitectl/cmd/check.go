package cmd

import (
	"errors"

	"github.com/nfrund/sitefront/cmd/sitectl/internal/output"
	"github.com/nfrund/sitefront/internal/diagnostics"
	"github.com/nfrund/sitefront/internal/queries"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("one or more queries could not reach the backend")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run every named query and report the results",
		Long: `Run every named query against the backend, the same checks the
/test-working page shows. Exits non-zero when a query fails at the HTTP level.
GraphQL errors are reported but do not fail the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := diagnostics.Run(cmd.Context(), opts.client(), queries.All())
			if err := output.Checks(cmd.OutOrStdout(), checks, opts.format); err != nil {
				return err
			}
			if diagnostics.Failed(checks) {
				return errChecksFailed
			}
			return nil
		},
	}
}
