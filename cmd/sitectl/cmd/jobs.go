package cmd

import (
	"fmt"
	"strconv"

	"github.com/nfrund/sitefront/cmd/sitectl/internal/output"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/markdown"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/spf13/cobra"
)

func newJobsCmd(opts *options) *cobra.Command {
	var (
		page    int
		asMD    bool
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "jobs [slug]",
		Short: "List job postings, or print one as markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := content.NewRepository(opts.client(), opts.logger())

			if len(args) == 1 {
				job, err := repo.Job(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				md, err := markdown.Job(job)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			if perPage <= 0 {
				perPage = opts.config().GetJobsPerPage()
			}
			result, err := repo.Jobs(cmd.Context(), pagination.FromSearchParams(strconv.Itoa(page), perPage))
			if err != nil {
				return err
			}
			if !asMD {
				return output.Jobs(cmd.OutOrStdout(), result, opts.format)
			}
			for _, job := range result.Jobs {
				md, err := markdown.Job(job)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), md)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "Postings per page (defaults to JOBS_PER_PAGE)")
	cmd.Flags().BoolVar(&asMD, "markdown", false, "Print each posting as markdown")
	return cmd
}
