package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nfrund/sitefront/internal/queries"
	"github.com/spf13/cobra"
)

func newQueryCmd(opts *options) *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "query <name>",
		Short: "Run a named query and print the response body",
		Long: `Run one of the site's named queries and print the response exactly as
the backend returned it, pretty-printed. Known names: ` + strings.Join(queryNames(), ", ") + `.

Variables default to representative values and can be overridden:

  sitectl query job --var slug=senior-engineer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, ok := queries.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown query %q (known: %s)", args[0], strings.Join(queryNames(), ", "))
			}
			variables, err := mergeVars(q.Variables, vars)
			if err != nil {
				return err
			}

			resp, err := opts.client().Do(cmd.Context(), q.Query, variables)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := json.Indent(&buf, resp.Raw, "", "  "); err != nil {
				buf.Reset()
				buf.Write(resp.Raw)
			}
			buf.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Query variable as key=value (repeatable)")
	return cmd
}

func queryNames() []string {
	var names []string
	for _, q := range queries.All() {
		names = append(names, q.Name)
	}
	sort.Strings(names)
	return names
}

// mergeVars overlays key=value pairs on the defaults. Integers stay integers
// so Int! variables validate.
func mergeVars(defaults map[string]any, pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(defaults)+len(pairs))
	for k, v := range defaults {
		out[k] = v
	}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --var %q, want key=value", p)
		}
		if n, err := strconv.Atoi(v); err == nil {
			out[k] = n
		} else {
			out[k] = v
		}
	}
	return out, nil
}
