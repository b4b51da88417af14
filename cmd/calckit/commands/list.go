package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"calckit/internal/domain"
)

func listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calcs, err := appCtx.Calculators.List(cmd.Context(), domain.Category(category))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			var last domain.Category
			for _, c := range calcs {
				if c.Category != last {
					if last != "" {
						fmt.Fprintln(tw)
					}
					fmt.Fprintf(tw, "%s\n", c.Category.Title())
					last = c.Category
				}
				fmt.Fprintf(tw, "  %s\t%s\n", c.Slug, c.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category (finance, math, geometry, health, date, conversion, developer, science)")
	return cmd
}
