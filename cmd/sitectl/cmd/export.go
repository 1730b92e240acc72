package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/nfrund/sitefront/internal/app"
	"github.com/nfrund/sitefront/internal/export"
	"github.com/nfrund/sitefront/internal/server"
	"github.com/nfrund/sitefront/internal/storage"
	"github.com/nfrund/sitefront/web"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page into a directory of static files",
		Long: `Render the homepage, the ROI calculator, the job listing and every job
posting through the site's own handlers and write them as <route>/index.html,
together with the static assets.

The contact form and the live ROI estimate still post to the site's
endpoints, so they only work when a server answers on the same origin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return errors.New("--out is required")
			}
			ctx := cmd.Context()
			logger := opts.logger()
			cfg := opts.config()

			injector := app.NewInjector(cfg, logger)
			defer app.Shutdown(ctx, injector)
			services, err := app.Resolve(injector)
			if err != nil {
				return err
			}

			srv := server.New(services)
			srv.RegisterRoutes()

			jobRoutes, err := export.JobRoutes(ctx, services.Content, cfg.GetJobsPerPage())
			if err != nil {
				logger.Warn("Could not list job postings, exporting without them", "error", err)
			}
			routes := append(append([]string{}, export.StaticRoutes...), jobRoutes...)

			x := export.New(storage.NewDirStore(outDir), srv.E, logger)
			report, err := x.Export(ctx, routes)
			if err != nil {
				return err
			}

			assets, err := fs.Sub(web.FS, "static")
			if err != nil {
				return err
			}
			n, err := x.CopyAssets(ctx, assets, "static")
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Wrote %d pages and %d assets to %s\n", len(report.Written), n, outDir)
			for route, status := range report.Skipped {
				fmt.Fprintf(w, "Skipped %s (status %d)\n", route, status)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
	return cmd
}
