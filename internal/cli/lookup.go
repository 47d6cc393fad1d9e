package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"EspDiag/internal/lookup/app"
)

func (r *root) newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <code|name>...",
		Short: "Resolve status codes (decimal or 0x hex, negative allowed) or symbolic names",
		Args:  args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, queries []string) error {
			a, err := r.app()
			if err != nil {
				return err
			}
			defer a.Close()

			svc := app.NewService(a.Catalog)
			var results []app.Result
			var errs []error
			for _, q := range queries {
				res, err := svc.Resolve(cmd.Context(), q)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", q, err))
					continue
				}
				results = append(results, res)
			}
			if err := printResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if len(errs) > 0 {
				return dataError(errors.Join(errs...))
			}
			return nil
		},
	}
}

func (r *root) newListCmd() *cobra.Command {
	var feature string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered status codes",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.app()
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := app.NewService(a.Catalog).List(cmd.Context(), feature)
			if err != nil {
				return dataError(err)
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&feature, "feature", "", "only list codes of this feature")
	return cmd
}

func (r *root) newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List enabled features and their code counts",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := r.app()
			if err != nil {
				return err
			}
			defer a.Close()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FEATURE\tCODES")
			for _, f := range app.NewService(a.Catalog).Features(cmd.Context()) {
				fmt.Fprintf(tw, "%s\t%d\n", f.Name, f.Count)
			}
			return tw.Flush()
		},
	}
}

func printResults(w io.Writer, results []app.Result) error {
	if len(results) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tHEX\tNAME\tDESCRIPTION")
	for _, res := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", res.Code, res.Hex, res.Name, res.Description)
	}
	return tw.Flush()
}
